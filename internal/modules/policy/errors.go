package policy

import "errors"

var (
	ErrInvalidPolicy = errors.New("rule document is not valid JSON")
	ErrForbidden     = errors.New("caller does not own this camp")
	ErrNotFound      = errors.New("camp not found")
)
