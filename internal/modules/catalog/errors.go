package catalog

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrInvalidPrice  = errors.New("base_price must be a non-negative decimal")
	ErrNotFound      = errors.New("camp not found")
	ErrForbidden     = errors.New("caller does not own this camp")
	ErrDuplicateSite = errors.New("site name already used in this camp")
)
