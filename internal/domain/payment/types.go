package payment

import (
	"strings"
	"unicode"

	"seat-reservation/internal/pkg/errs"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	default:
		return false
	}
}

const maxIdempotencyKeyLength = 255

// IdempotencyKey is the client supplied token that collapses repeated
// submissions into one payment attempt.
type IdempotencyKey struct {
	value string
}

// NewIdempotencyKey keeps the key byte for byte as the client sent it, so
// surrounding whitespace is rejected rather than trimmed.
func NewIdempotencyKey(s string) (IdempotencyKey, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return IdempotencyKey{}, errs.ErrMissingIdempotencyKey
	}
	if trimmed != s {
		return IdempotencyKey{}, errs.ErrInvalidIdempotencyKey
	}
	if len(s) > maxIdempotencyKeyLength {
		return IdempotencyKey{}, errs.ErrInvalidIdempotencyKey
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return IdempotencyKey{}, errs.ErrInvalidIdempotencyKey
		}
	}
	return IdempotencyKey{value: s}, nil
}

func (k IdempotencyKey) Value() string {
	return k.value
}
