package addressbook

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zjrosen/addressbook/internal/log"
	"github.com/zjrosen/addressbook/internal/pattern"
)

// ChangeKind identifies what a Change describes.
type ChangeKind string

const (
	ChangePersonCreated ChangeKind = "person_created"
	ChangeGroupCreated  ChangeKind = "group_created"
	ChangeMemberJoined  ChangeKind = "member_joined"
)

// Change describes one mutation of the address book. PersonID is set for
// person and membership changes, GroupID for group and membership changes.
type Change struct {
	Kind     ChangeKind
	PersonID string
	GroupID  string
}

// Listener observes changes. It runs synchronously inside the mutating call
// and must not call back into the registry.
type Listener func(Change)

// Option configures a Registry.
type Option func(*Registry)

// WithMatcher sets the pattern engine used by Group.FilterMembersByEmail.
func WithMatcher(m pattern.Matcher) Option {
	return func(r *Registry) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithListener registers l to observe every change.
func WithListener(l Listener) Option {
	return func(r *Registry) {
		if l != nil {
			r.listeners = append(r.listeners, l)
		}
	}
}

// Registry creates and records persons and groups.
type Registry struct {
	entities  orderedSet[Entity]
	byID      map[string]Entity
	matcher   pattern.Matcher
	listeners []Listener
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entities: newOrderedSet[Entity](),
		byID:     make(map[string]Entity),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.matcher == nil {
		r.matcher = pattern.NewCompiler()
	}
	return r
}

// NewPerson creates and registers a person. Duplicate values in the contact
// slices collapse; no value is validated.
func (r *Registry) NewPerson(firstName, lastName string, addresses, emails, phoneNumbers []string) *Person {
	p := newPerson(r, uuid.NewString(), firstName, lastName, addresses, emails, phoneNumbers)
	r.register(p)
	log.Debug(log.CatRegistry, "registered person", "id", p.id, "name", p.FullName())
	r.notify(Change{Kind: ChangePersonCreated, PersonID: p.id})
	return p
}

// NewGroup creates and registers a group, adding members in order exactly as
// AddMember would. Members are checked first: on error nothing is
// registered or linked.
func (r *Registry) NewGroup(name string, members ...*Person) (*Group, error) {
	for i, p := range members {
		if p == nil {
			return nil, fmt.Errorf("group %q member %d: %w: person is nil", name, i, ErrTypeMismatch)
		}
		if p.book == nil {
			return nil, fmt.Errorf("group %q member %d: %w: %q does not belong to an address book", name, i, ErrTypeMismatch, p.FullName())
		}
		if p.book != r {
			return nil, fmt.Errorf("group %q member %d: %w: %q", name, i, ErrForeignEntity, p.FullName())
		}
	}

	g := &Group{
		id:      uuid.NewString(),
		book:    r,
		name:    name,
		members: newOrderedSet[*Person](),
	}
	r.register(g)
	log.Debug(log.CatRegistry, "registered group", "id", g.id, "name", name, "members", len(members))
	r.notify(Change{Kind: ChangeGroupCreated, GroupID: g.id})

	for _, p := range members {
		if err := link(p, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (r *Registry) register(e Entity) {
	r.entities.add(e)
	r.byID[e.ID()] = e
}

func (r *Registry) notify(c Change) {
	for _, l := range r.listeners {
		l(c)
	}
}

// Contains reports whether e was created by this registry since the last Reset.
func (r *Registry) Contains(e Entity) bool {
	if e == nil {
		return false
	}
	return r.entities.has(e)
}

// GetByID returns the entity with the given identifier.
func (r *Registry) GetByID(id string) (Entity, error) {
	if e, ok := r.byID[id]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns every registered entity.
func (r *Registry) List() []Entity {
	return r.entities.values()
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return r.entities.len()
}

// Persons returns every registered person.
func (r *Registry) Persons() []*Person {
	result := make([]*Person, 0)
	for _, e := range r.entities.items {
		if p, ok := e.(*Person); ok {
			result = append(result, p)
		}
	}
	return result
}

// Groups returns every registered group.
func (r *Registry) Groups() []*Group {
	result := make([]*Group, 0)
	for _, e := range r.entities.items {
		if g, ok := e.(*Group); ok {
			result = append(result, g)
		}
	}
	return result
}

// PersonsByFullName returns the registered persons whose full name equals fullName.
func (r *Registry) PersonsByFullName(fullName string) []*Person {
	result := make([]*Person, 0)
	for _, p := range r.Persons() {
		if p.FullName() == fullName {
			result = append(result, p)
		}
	}
	return result
}

// GroupsByName returns the registered groups called name.
func (r *Registry) GroupsByName(name string) []*Group {
	result := make([]*Group, 0)
	for _, g := range r.Groups() {
		if g.name == name {
			result = append(result, g)
		}
	}
	return result
}

// Reset forgets every registered entity and detaches it from the registry.
// Handles obtained earlier can still be read, and keep the memberships they
// had, but joining or adding them fails with ErrTypeMismatch.
func (r *Registry) Reset() {
	n := r.entities.len()
	for _, e := range r.entities.items {
		switch e := e.(type) {
		case *Person:
			e.book = nil
		case *Group:
			e.book = nil
		}
	}
	r.entities.clear()
	r.byID = make(map[string]Entity)
	log.Debug(log.CatRegistry, "registry reset", "forgotten", n)
}
