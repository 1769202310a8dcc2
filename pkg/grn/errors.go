package grn

import "errors"

// ErrUnknownType is returned when a Type value does not name one of the
// supported registration number formats.
var ErrUnknownType = errors.New("unknown registration number type")
