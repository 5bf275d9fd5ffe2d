package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"studymate/internal/domain"
	"studymate/internal/util"

	"github.com/go-playground/validator/v10"
)

// Validator checks request DTOs against their `validate` tags and reports
// failures as domain.ValidationErrors keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "ulid", func(fl validator.FieldLevel) bool {
		return util.IsValidULID(fl.Field().String())
	})
	return &Validator{validate: v}
}

// mustRegister adds a custom tag and panics if the validator refuses it.
// Tags are fixed at build time, so a failure is a programming error.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct returns nil when s is valid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewInvalidInputError(err.Error())
	}

	var out domain.ValidationErrors
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

// ValidateSessionID checks a session path parameter.
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.NewMissingFieldError("session_id"))
	} else if !util.IsValidULID(id) {
		errs = append(errs, domain.NewInvalidFormatError("session_id", id))
	}
	return errs
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(field)
	case "min", "max", "gte", "lte":
		lo, hi := bounds(fe)
		return domain.NewOutOfRangeError(field, fe.Value(), lo, hi)
	default:
		return domain.NewInvalidFormatError(field, fe.Value())
	}
}

// bounds reports the range a min/max style tag enforces. Only one side is
// known per tag, the other is left open.
func bounds(fe validator.FieldError) (int, int) {
	n, _ := strconv.Atoi(fe.Param())
	switch fe.Tag() {
	case "min", "gte":
		return n, int(^uint(0) >> 1)
	default:
		return 0, n
	}
}
