package validation

import (
	"errors"
	"sync"

	"seat-reservation/internal/domain/hold"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register adds the custom binding tags to gin's validator engine.
// Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		registerErr = v.RegisterValidation("seatemail", seatEmail)
	})
	return registerErr
}

func seatEmail(fl validator.FieldLevel) bool {
	_, err := hold.NewEmail(fl.Field().String())
	return err == nil
}
