package addressbook

import (
	"fmt"

	"github.com/zjrosen/addressbook/internal/log"
)

// Group is a named collection of persons. Construct one with Registry.NewGroup.
type Group struct {
	id      string
	book    *Registry
	name    string
	members orderedSet[*Person]
}

// ID returns the group's identifier.
func (g *Group) ID() string {
	return g.id
}

// Kind returns KindGroup.
func (g *Group) Kind() Kind {
	return KindGroup
}

func (g *Group) registry() *Registry {
	return g.book
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// String implements fmt.Stringer with the group name.
func (g *Group) String() string {
	return g.name
}

// AddMember makes p a member of the group. It is the mirror of
// p.JoinGroup(g) and is idempotent.
func (g *Group) AddMember(p *Person) error {
	return link(p, g)
}

// Members returns the current members.
func (g *Group) Members() []*Person {
	return g.members.values()
}

// DisplayMembers returns the full names of the members.
func (g *Group) DisplayMembers() []string {
	return DisplayNames(g.members.items)
}

// HasMember reports whether p belongs to the group.
func (g *Group) HasMember(p *Person) bool {
	if g == nil || p == nil {
		return false
	}
	return g.members.has(p)
}

// Len returns the number of members.
func (g *Group) Len() int {
	return g.members.len()
}

// FilterMembersByFullName returns the members whose full name equals
// fullName exactly. The result is empty, never nil, when nobody matches.
func (g *Group) FilterMembersByFullName(fullName string) []*Person {
	result := make([]*Person, 0)
	for _, m := range g.members.items {
		if m.FullName() == fullName {
			result = append(result, m)
		}
	}
	log.Debug(log.CatFilter, "filtered members by full name", "group", g.id, "matches", len(result))
	return result
}

// FilterMembersByEmail returns the members with at least one email in which
// expr finds a match. Each member appears at most once. A group that was not
// created by a registry, or was detached by Reset, fails with ErrTypeMismatch.
func (g *Group) FilterMembersByEmail(expr string) ([]*Person, error) {
	if g == nil || g.book == nil {
		return nil, fmt.Errorf("filter members by email: %w: group does not belong to an address book", ErrTypeMismatch)
	}
	pat, err := g.book.matcher.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("filter members of %q by email: %w", g.name, err)
	}

	result := make([]*Person, 0)
	for _, m := range g.members.items {
		for _, email := range m.emails.items {
			ok, err := pat.Match(email)
			if err != nil {
				return nil, fmt.Errorf("filter members of %q by email: %w", g.name, err)
			}
			if ok {
				result = append(result, m)
				break
			}
		}
	}
	log.Debug(log.CatFilter, "filtered members by email", "group", g.id, "pattern", expr, "matches", len(result))
	return result, nil
}
