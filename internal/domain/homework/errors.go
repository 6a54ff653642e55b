package homework

import "errors"

var (
	ErrMissingField  = errors.New("homework record is missing a required field")
	ErrUnknownStatus = errors.New("unknown homework status")
)
