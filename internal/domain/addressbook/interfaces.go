package addressbook

// Directory defines read-only access to a registry, for callers that look
// entities up but must not create them.
type Directory interface {
	// Contains reports whether the entity is registered.
	Contains(e Entity) bool

	// GetByID returns the entity with the given identifier.
	// Returns ErrNotFound if no entity matches.
	GetByID(id string) (Entity, error)

	// List returns every registered entity.
	List() []Entity

	// Persons returns every registered person.
	Persons() []*Person

	// Groups returns every registered group.
	Groups() []*Group

	// Len returns the number of registered entities.
	Len() int
}

// Compile-time check that Registry implements Directory.
var _ Directory = (*Registry)(nil)
