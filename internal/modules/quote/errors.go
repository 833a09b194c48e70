package quote

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("site not found")
)
