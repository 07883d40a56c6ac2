package testutil

// WithPaintersTestData adds three painters in one group, two of whom share
// the "van" particle in their last name.
//
//	painters: vincent (Vincent van Gogh), rembrandt (Rembrandt van Rijn),
//	          rubens (Peter Paul Rubens)
func (b *Builder) WithPaintersTestData() *Builder {
	return b.
		WithPerson("vincent", "Vincent", "van Gogh",
			Addresses("Zundert"), Emails("vincent@vangogh.nl")).
		WithPerson("rembrandt", "Rembrandt", "van Rijn",
			Addresses("Leiden"), Emails("rembrandt@rijn.nl")).
		WithPerson("rubens", "Peter Paul", "Rubens",
			Addresses("Siegen"), Emails("rubens@antwerpen.be")).
		WithGroup("painters", "painters", "vincent", "rembrandt", "rubens")
}

// WithEmailTestData adds a family group for email filter tests. julia has
// two addresses that both contain "julia".
//
//	jensens: alexander (alexander@company.com),
//	         julia (julia@mail.com, julia@jensen.nl)
func (b *Builder) WithEmailTestData() *Builder {
	return b.
		WithPerson("alexander", "Alexander", "Jensen",
			Emails("alexander@company.com"), PhoneNumbers("+45 1111 1111")).
		WithPerson("julia", "Julia", "Jensen",
			Emails("julia@mail.com", "julia@jensen.nl"), PhoneNumbers("+45 2222 2222")).
		WithGroup("jensens", "Jensen family", "alexander", "julia")
}
