package addressbook

// Person is a contact. Construct one with Registry.NewPerson.
type Person struct {
	id           string
	book         *Registry
	firstName    string
	lastName     string
	addresses    orderedSet[string]
	emails       orderedSet[string]
	phoneNumbers orderedSet[string]
	groups       orderedSet[*Group] // back-references, maintained by link
}

func newPerson(book *Registry, id, firstName, lastName string, addresses, emails, phoneNumbers []string) *Person {
	return &Person{
		id:           id,
		book:         book,
		firstName:    firstName,
		lastName:     lastName,
		addresses:    newOrderedSet(addresses...),
		emails:       newOrderedSet(emails...),
		phoneNumbers: newOrderedSet(phoneNumbers...),
		groups:       newOrderedSet[*Group](),
	}
}

// ID returns the person's identifier.
func (p *Person) ID() string {
	return p.id
}

// Kind returns KindPerson.
func (p *Person) Kind() Kind {
	return KindPerson
}

func (p *Person) registry() *Registry {
	return p.book
}

// FirstName returns the first name as given at construction.
func (p *Person) FirstName() string {
	return p.firstName
}

// LastName returns the last name as given at construction.
func (p *Person) LastName() string {
	return p.lastName
}

// FullName returns "{first} {last}". It is also the key used by
// Group.FilterMembersByFullName.
func (p *Person) FullName() string {
	return p.firstName + " " + p.lastName
}

// String implements fmt.Stringer with the full name.
func (p *Person) String() string {
	return p.FullName()
}

// Addresses returns the stored postal addresses.
func (p *Person) Addresses() []string {
	return p.addresses.values()
}

// Emails returns the stored email addresses.
func (p *Person) Emails() []string {
	return p.emails.values()
}

// PhoneNumbers returns the stored phone numbers.
func (p *Person) PhoneNumbers() []string {
	return p.phoneNumbers.values()
}

// AddAddress stores address and reports whether it was new.
func (p *Person) AddAddress(address string) bool {
	return p.addresses.add(address)
}

// AddEmail stores email and reports whether it was new.
func (p *Person) AddEmail(email string) bool {
	return p.emails.add(email)
}

// AddPhoneNumber stores number and reports whether it was new.
func (p *Person) AddPhoneNumber(number string) bool {
	return p.phoneNumbers.add(number)
}

// Groups returns the groups this person belongs to.
func (p *Person) Groups() []*Group {
	return p.groups.values()
}

// DisplayGroups returns the names of the person's groups.
func (p *Person) DisplayGroups() []string {
	return DisplayNames(p.groups.items)
}

// IsMemberOf reports whether the person belongs to g.
func (p *Person) IsMemberOf(g *Group) bool {
	if p == nil || g == nil {
		return false
	}
	return p.groups.has(g)
}

// JoinGroup makes the person a member of g. It is the mirror of
// g.AddMember(p) and is idempotent.
func (p *Person) JoinGroup(g *Group) error {
	return link(p, g)
}
