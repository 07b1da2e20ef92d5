package commands

import (
	"seat-reservation/internal/pkg/errs"
)

var domainErrors = []error{
	errs.ErrSeatNotFound,
	errs.ErrBookingNotFound,
	errs.ErrSeatUnavailable,
	errs.ErrSeatNotHeld,
	errs.ErrInvalidOrExpiredHold,
	errs.ErrMissingIdempotencyKey,
	errs.ErrInvalidIdempotencyKey,
	errs.ErrDomainValidation,
	errs.ErrPaymentFailed,
}

// commandError keeps domain failures as they are and marks everything else
// as an internal storage failure.
func commandError(err error) error {
	for _, target := range domainErrors {
		if errs.Is(err, target) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
