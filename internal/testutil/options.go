package testutil

// personData holds everything needed to create a person.
type personData struct {
	key          string
	firstName    string
	lastName     string
	addresses    []string
	emails       []string
	phoneNumbers []string
	groups       []string // group keys joined after creation
}

// groupData holds everything needed to create a group.
type groupData struct {
	key     string
	name    string
	members []string // person keys seeded at construction
}

// PersonOption configures a person during builder setup.
type PersonOption func(*personData)

// Addresses sets the person's addresses.
func Addresses(addresses ...string) PersonOption {
	return func(p *personData) {
		p.addresses = addresses
	}
}

// Emails sets the person's email addresses.
func Emails(emails ...string) PersonOption {
	return func(p *personData) {
		p.emails = emails
	}
}

// PhoneNumbers sets the person's phone numbers.
func PhoneNumbers(numbers ...string) PersonOption {
	return func(p *personData) {
		p.phoneNumbers = numbers
	}
}

// MemberOf joins the person to the groups with the given keys via JoinGroup,
// after every group has been created.
func MemberOf(groupKeys ...string) PersonOption {
	return func(p *personData) {
		p.groups = append(p.groups, groupKeys...)
	}
}
