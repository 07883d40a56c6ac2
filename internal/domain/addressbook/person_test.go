package addressbook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPerson_Attributes(t *testing.T) {
	r := NewRegistry()

	p := r.NewPerson("Vincent", "van Gogh",
		[]string{"Zundert 1"},
		[]string{"vincent@example.com"},
		[]string{"+31 76 000 0000"},
	)

	require.NotEmpty(t, p.ID())
	require.Equal(t, KindPerson, p.Kind())
	require.Equal(t, "Vincent", p.FirstName())
	require.Equal(t, "van Gogh", p.LastName())
	require.Equal(t, []string{"Zundert 1"}, p.Addresses())
	require.Equal(t, []string{"vincent@example.com"}, p.Emails())
	require.Equal(t, []string{"+31 76 000 0000"}, p.PhoneNumbers())
	require.Empty(t, p.Groups())
}

func TestNewPerson_DuplicateInputsCollapse(t *testing.T) {
	r := NewRegistry()

	p := r.NewPerson("Julia", "Jensen",
		[]string{"Main 1", "Main 1"},
		[]string{"julia@mail.com", "julia@jensen.nl", "julia@mail.com"},
		[]string{"1", "1", "1"},
	)

	require.Len(t, p.Addresses(), 1)
	require.Equal(t, []string{"julia@mail.com", "julia@jensen.nl"}, p.Emails())
	require.Len(t, p.PhoneNumbers(), 1)
}

func TestNewPerson_AcceptsEmptyValues(t *testing.T) {
	r := NewRegistry()

	p := r.NewPerson("", "", nil, []string{""}, nil)

	require.Equal(t, " ", p.String())
	require.Empty(t, p.Addresses())
	require.Equal(t, []string{""}, p.Emails())
	require.True(t, r.Contains(p))
}

func TestPerson_String(t *testing.T) {
	r := NewRegistry()
	p := mkPerson(t, r, "Rembrandt", "van Rijn")

	require.Equal(t, "Rembrandt van Rijn", p.String())
	require.Equal(t, p.String(), p.FullName())
}

func TestPerson_ManyContactValues(t *testing.T) {
	r := NewRegistry()
	p := mkPerson(t, r, "Frans", "Hals", "frans@hals.nl")

	require.True(t, p.AddAddress("Haarlem 2"))
	require.Len(t, p.Addresses(), 2)
	require.Contains(t, p.Addresses(), "Haarlem 2")

	require.True(t, p.AddEmail("frans@haarlem.nl"))
	require.Len(t, p.Emails(), 2)
	require.Contains(t, p.Emails(), "frans@haarlem.nl")

	require.True(t, p.AddPhoneNumber("+31 23 000 0000"))
	require.Len(t, p.PhoneNumbers(), 2)
	require.Contains(t, p.PhoneNumbers(), "+31 23 000 0000")
}

func TestPerson_ContactValuesContainNoDoubles(t *testing.T) {
	r := NewRegistry()
	p := mkPerson(t, r, "Jan", "Steen", "jan@steen.nl")
	address := p.Addresses()[0]
	phone := p.PhoneNumbers()[0]

	require.False(t, p.AddEmail("jan@steen.nl"))
	require.False(t, p.AddAddress(address))
	require.False(t, p.AddPhoneNumber(phone))

	require.Equal(t, []string{"jan@steen.nl"}, p.Emails())
	require.Len(t, p.Addresses(), 1)
	require.Len(t, p.PhoneNumbers(), 1)
}

func TestPerson_AccessorsReturnCopies(t *testing.T) {
	r := NewRegistry()
	p := mkPerson(t, r, "Jan", "Steen", "jan@steen.nl")

	emails := p.Emails()
	emails[0] = "evil@example.com"

	require.Equal(t, []string{"jan@steen.nl"}, p.Emails())
}

func TestPerson_JoiningGroups(t *testing.T) {
	r := NewRegistry()
	p := mkPerson(t, r, "Johannes", "Vermeer")
	g1 := mkGroup(t, r, "delft")
	g2 := mkGroup(t, r, "golden-age")

	require.NoError(t, p.JoinGroup(g1))
	require.Equal(t, 1, g1.Len())
	require.Len(t, p.Groups(), 1)

	require.NoError(t, p.JoinGroup(g2))
	require.Equal(t, 1, g2.Len())
	require.Len(t, p.Groups(), 2)
}

func TestPerson_DisplayGroups(t *testing.T) {
	r := NewRegistry()
	p := mkPerson(t, r, "Johannes", "Vermeer")
	g1 := mkGroup(t, r, "delft")
	g2 := mkGroup(t, r, "golden-age")

	require.NoError(t, p.JoinGroup(g1))
	require.NoError(t, p.JoinGroup(g2))

	groups := p.Groups()
	require.Contains(t, groups, g1)
	require.Contains(t, groups, g2)
	require.Equal(t, []string{"delft", "golden-age"}, p.DisplayGroups())
}

func TestPerson_JoinGroup_Nil(t *testing.T) {
	r := NewRegistry()
	p := mkPerson(t, r, "Johannes", "Vermeer")

	err := p.JoinGroup(nil)

	require.ErrorIs(t, err, ErrTypeMismatch)
	require.Empty(t, p.Groups())
}

func TestPerson_JoinGroup_NilReceiver(t *testing.T) {
	r := NewRegistry()
	g := mkGroup(t, r, "delft")

	var p *Person
	err := p.JoinGroup(g)

	require.ErrorIs(t, err, ErrTypeMismatch)
	require.Zero(t, g.Len())
}

func TestPerson_IsMemberOf(t *testing.T) {
	r := NewRegistry()
	p := mkPerson(t, r, "Johannes", "Vermeer")
	g := mkGroup(t, r, "delft")

	require.False(t, p.IsMemberOf(g))
	require.NoError(t, p.JoinGroup(g))
	require.True(t, p.IsMemberOf(g))
	require.False(t, p.IsMemberOf(nil))

	var nobody *Person
	require.False(t, nobody.IsMemberOf(g))
}
