package errs

// Failure kinds surfaced by the seat lifecycle commands.
var (
	// NotFound
	ErrSeatNotFound    = New("seat not found")
	ErrEventNotFound   = New("event not found")
	ErrBookingNotFound = New("booking not found")
	ErrPaymentNotFound = New("payment not found")

	// Conflict: expected under contention, safe to retry
	ErrSeatUnavailable = New("seat not available")
	ErrSeatNotHeld     = New("seat not held")

	// Hold missing, or past its expires_at even if the row has not been reclaimed yet
	ErrInvalidOrExpiredHold = New("invalid or expired hold")

	// Validation: rejected before touching storage
	ErrMissingIdempotencyKey = New("idempotency key required")
	ErrInvalidIdempotencyKey = New("invalid idempotency key")
	ErrDomainValidation      = New("domain validation failed")

	// Transient external failure
	ErrPaymentFailed = New("payment failed")

	// Internal
	ErrDatabaseOperationFailed = New("database operation failed")
)
