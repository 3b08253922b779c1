package constants

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	LoggerKey    ContextKey = "logger"
	ParamsKey    ContextKey = "params"
	SessionKey   ContextKey = "session"
	RequestStart ContextKey = "requestStart"
)

// Covers the full postcode grammar including GIR 0AA; the inward code is
// always digit + two letters.
var ukPostcodePattern = regexp.MustCompile(`(?i)^(GIR 0AA|[A-Z]{1,2}[0-9][A-Z0-9]? ?[0-9][A-Z]{2})$`)

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("ukpostcode", func(fl validator.FieldLevel) bool {
		return ukPostcodePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}
