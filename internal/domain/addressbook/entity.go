package addressbook

import "fmt"

// Kind distinguishes the entity types a Registry holds.
type Kind int

const (
	KindPerson Kind = iota + 1
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindPerson:
		return "person"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Entity is anything a Registry records. Only *Person and *Group implement it.
type Entity interface {
	fmt.Stringer

	// ID returns the identifier assigned at construction.
	ID() string

	// Kind reports whether the entity is a person or a group.
	Kind() Kind

	registry() *Registry
}

// Compile-time checks.
var (
	_ Entity = (*Person)(nil)
	_ Entity = (*Group)(nil)
)

// DisplayNames returns the display form of each entity, in order.
func DisplayNames[E fmt.Stringer](entities []E) []string {
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.String())
	}
	return names
}
