package addressbook

import (
	"errors"

	"github.com/zjrosen/addressbook/internal/pattern"
)

// Address book errors
var (
	ErrTypeMismatch   = errors.New("argument is not a valid address book entity")
	ErrForeignEntity  = errors.New("entity belongs to a different address book")
	ErrNotFound       = errors.New("entity not found")
	ErrInvalidPattern = pattern.ErrInvalidPattern
	ErrMatchTimeout   = pattern.ErrMatchTimeout
)
