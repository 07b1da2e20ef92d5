package httperr

import (
	"errors"
	"net/http"

	"seat-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message   string `json:"message"`
		Retryable bool   `json:"retryable,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	abort(c, status, err, msg, false, detail)
}

type mapping struct {
	target    error
	status    int
	message   string
	retryable bool
}

var domainMappings = []mapping{
	{errs.ErrSeatUnavailable, http.StatusConflict, "Seat is not available", false},
	{errs.ErrSeatNotHeld, http.StatusConflict, "Seat is not held", false},
	{errs.ErrSeatNotFound, http.StatusNotFound, "Seat not found", false},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found", false},
	{errs.ErrEventNotFound, http.StatusNotFound, "Event not found", false},
	{errs.ErrPaymentNotFound, http.StatusNotFound, "Payment not found", false},
	{errs.ErrInvalidOrExpiredHold, http.StatusBadRequest, "Invalid or expired hold", false},
	{errs.ErrMissingIdempotencyKey, http.StatusBadRequest, "Idempotency-Key header is required", false},
	{errs.ErrInvalidIdempotencyKey, http.StatusBadRequest, "Invalid Idempotency-Key header", false},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Validation failed", false},
	{errs.ErrPaymentFailed, http.StatusBadGateway, "Payment failed", true},
}

// AbortWithDomainError maps a usecase error to its HTTP status.
// Unknown errors become 500 without leaking their message.
func AbortWithDomainError(c *gin.Context, err error) {
	for _, m := range domainMappings {
		if errs.Is(err, m.target) {
			abort(c, m.status, err, m.message, m.retryable, nil)
			return
		}
	}
	abort(c, http.StatusInternalServerError, err, "Internal server error", false, nil)
}

// AbortWithBindError reports request binding failures as 400 with the
// failing fields and their rules.
func AbortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		abort(c, http.StatusBadRequest, err, "Invalid request", false, fields)
		return
	}
	abort(c, http.StatusBadRequest, err, "Invalid request", false, nil)
}

func abort(c *gin.Context, status int, err error, msg string, retryable bool, detail any) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Retryable = retryable
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
