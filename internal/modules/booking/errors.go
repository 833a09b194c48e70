package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("booking not found")
	ErrAlreadyReserved = errors.New("dates already reserved")
	ErrForbidden       = errors.New("caller does not own this booking")
	ErrInvalidState    = errors.New("booking is not in a cancellable state")

	// errDuplicateIdempotencyKey is an internal signal only: losing the
	// refund-insert race means another transaction already recorded the
	// cancellation, so the caller gets that record, never this error.
	errDuplicateIdempotencyKey = errors.New("duplicate idempotency key")
)
