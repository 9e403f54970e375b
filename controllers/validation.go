package controllers

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"makeyou-digital/backend/models"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("callback_window", func(fl validator.FieldLevel) bool {
				return IsCallbackWindow(fl.Field().String())
			})
		}
	})
}

// IsCallbackWindow accepts "Morning" as well as labels like "Morning (9am - 12pm)".
func IsCallbackWindow(s string) bool {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " ("); i >= 0 {
		s = s[:i]
	}
	for _, w := range models.CallbackWindows {
		if strings.EqualFold(s, w) {
			return true
		}
	}
	return false
}

// isSchemaError separates "well-formed JSON of the wrong shape" from bodies
// that are not JSON at all.
func isSchemaError(err error) bool {
	var ve validator.ValidationErrors
	var te *json.UnmarshalTypeError
	return errors.As(err, &ve) || errors.As(err, &te)
}
