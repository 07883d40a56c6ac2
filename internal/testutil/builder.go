// Package testutil builds address book fixtures for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/addressbook/internal/domain/addressbook"
)

// Book is the result of Build: the registry plus every entity by key.
type Book struct {
	Registry *addressbook.Registry
	People   map[string]*addressbook.Person
	Groups   map[string]*addressbook.Group
}

// Person returns the person registered under key and fails the test if
// there is none.
func (b *Book) Person(t *testing.T, key string) *addressbook.Person {
	t.Helper()
	p, ok := b.People[key]
	require.True(t, ok, "no person with key %q", key)
	return p
}

// Group returns the group registered under key and fails the test if there
// is none.
func (b *Book) Group(t *testing.T, key string) *addressbook.Group {
	t.Helper()
	g, ok := b.Groups[key]
	require.True(t, ok, "no group with key %q", key)
	return g
}

// Builder accumulates persons and groups and creates them in order.
type Builder struct {
	t      *testing.T
	reg    *addressbook.Registry
	people []personData
	groups []groupData
}

// NewBuilder creates a builder that registers into reg. A nil reg gets a
// fresh registry.
func NewBuilder(t *testing.T, reg *addressbook.Registry) *Builder {
	t.Helper()
	if reg == nil {
		reg = addressbook.NewRegistry()
	}
	return &Builder{t: t, reg: reg}
}

// WithPerson adds a person with optional configuration.
func (b *Builder) WithPerson(key, firstName, lastName string, opts ...PersonOption) *Builder {
	p := personData{key: key, firstName: firstName, lastName: lastName}
	for _, opt := range opts {
		opt(&p)
	}
	b.people = append(b.people, p)
	return b
}

// WithGroup adds a group seeded with the persons under memberKeys.
func (b *Builder) WithGroup(key, name string, memberKeys ...string) *Builder {
	b.groups = append(b.groups, groupData{key: key, name: name, members: memberKeys})
	return b
}

// Build creates persons, then groups with their seeded members, then the
// memberships requested with MemberOf.
func (b *Builder) Build() *Book {
	b.t.Helper()
	book := &Book{
		Registry: b.reg,
		People:   make(map[string]*addressbook.Person, len(b.people)),
		Groups:   make(map[string]*addressbook.Group, len(b.groups)),
	}

	for _, p := range b.people {
		_, dup := book.People[p.key]
		require.False(b.t, dup, "duplicate person key %q", p.key)
		book.People[p.key] = b.reg.NewPerson(p.firstName, p.lastName, p.addresses, p.emails, p.phoneNumbers)
	}

	for _, g := range b.groups {
		_, dup := book.Groups[g.key]
		require.False(b.t, dup, "duplicate group key %q", g.key)
		members := make([]*addressbook.Person, 0, len(g.members))
		for _, key := range g.members {
			members = append(members, book.Person(b.t, key))
		}
		group, err := b.reg.NewGroup(g.name, members...)
		require.NoError(b.t, err)
		book.Groups[g.key] = group
	}

	for _, p := range b.people {
		for _, key := range p.groups {
			require.NoError(b.t, book.People[p.key].JoinGroup(book.Group(b.t, key)))
		}
	}
	return book
}
