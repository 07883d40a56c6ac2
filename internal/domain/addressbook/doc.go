// Package addressbook implements the domain layer of the address book:
// persons, groups, the membership relation between them and the registry
// that records every entity it creates.
//
// # Core Types
//
// Person is a contact with a first and last name plus sets of addresses,
// emails and phone numbers. Values in each set are unique; adding one twice
// is a no-op.
//
// Group is a named collection of persons. Group names are not unique.
//
// Registry creates persons and groups and records them. There is no global
// registry: callers construct one with NewRegistry and tear it down with
// Reset, so independent address books can live side by side.
//
// # Membership
//
// Membership is symmetric. Person.JoinGroup and Group.AddMember are two
// spellings of the same operation, and both sides are updated together:
//
//	p ∈ g.Members()  ⇔  g ∈ p.Groups()
//
// Neither side can be mutated directly. Linking is idempotent. A nil or
// zero-value counterpart, or one detached by Registry.Reset, fails with
// ErrTypeMismatch. An entity from another registry fails with
// ErrForeignEntity. Both checks run before any state changes.
//
// # Queries
//
// FilterMembersByFullName compares against the display form
// "{first} {last}" exactly and case-sensitively. Several persons may share a
// name, so it can return more than one.
//
// FilterMembersByEmail takes a regular expression and returns each member
// with at least one email containing a match, once. Malformed expressions
// fail with ErrInvalidPattern.
//
// Slices returned by queries are fresh copies in insertion order. The order
// is stable but not part of the contract.
//
// # Concurrency
//
// Registries and their entities are not safe for concurrent use. Callers
// that share one across goroutines must serialise access themselves.
package addressbook
