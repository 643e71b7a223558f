package money

import "errors"

var (
	// ErrInvalidArgument is returned when a value object is built from input it cannot represent.
	ErrInvalidArgument = errors.New("money: invalid argument")

	// ErrAmbiguity is returned when an accessor is called on an Amount whose VAT
	// classification makes the requested figure meaningless.
	ErrAmbiguity = errors.New("money: ambiguous amount")
)
