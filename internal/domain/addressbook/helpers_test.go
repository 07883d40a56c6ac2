package addressbook

import "testing"

// mkPerson creates a person with one address and phone number and the given emails.
func mkPerson(t *testing.T, r *Registry, first, last string, emails ...string) *Person {
	t.Helper()
	return r.NewPerson(first, last,
		[]string{first + " Street 1"},
		emails,
		[]string{"+31 20 000 0000"},
	)
}

// mkGroup creates a group and fails the test on error.
func mkGroup(t *testing.T, r *Registry, name string, members ...*Person) *Group {
	t.Helper()
	g, err := r.NewGroup(name, members...)
	if err != nil {
		t.Fatalf("NewGroup(%q): %v", name, err)
	}
	return g
}
