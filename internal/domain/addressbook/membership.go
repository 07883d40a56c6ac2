package addressbook

import (
	"fmt"

	"github.com/zjrosen/addressbook/internal/log"
)

// link is the only code that mutates membership. Both sides are updated
// together, after every precondition has been checked.
func link(p *Person, g *Group) error {
	if err := checkLink(p, g); err != nil {
		return err
	}
	if !g.members.add(p) {
		return nil
	}
	p.groups.add(g)

	log.Debug(log.CatMembership, "member joined", "person", p.id, "group", g.id)
	g.book.notify(Change{Kind: ChangeMemberJoined, PersonID: p.id, GroupID: g.id})
	return nil
}

func checkLink(p *Person, g *Group) error {
	switch {
	case p == nil:
		return fmt.Errorf("%w: person is nil", ErrTypeMismatch)
	case g == nil:
		return fmt.Errorf("%w: group is nil", ErrTypeMismatch)
	case p.book == nil:
		return fmt.Errorf("%w: person %q does not belong to an address book", ErrTypeMismatch, p.FullName())
	case g.book == nil:
		return fmt.Errorf("%w: group %q does not belong to an address book", ErrTypeMismatch, g.name)
	case p.book != g.book:
		return fmt.Errorf("%w: cannot link %q to group %q", ErrForeignEntity, p.FullName(), g.name)
	}
	return nil
}
