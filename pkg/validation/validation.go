// Package validation checks request structs against their `validate` tags
// and reports the first failure as a VALIDATION AppError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
)

var (
	validate    *validator.Validate
	abhaPattern = regexp.MustCompile(`^\d{2}-\d{4}-\d{4}-\d{4}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("abha_id", validateABHAID)
}

// Struct validates s. Failures come back as "<field> required" for missing
// values and "<field> is invalid" otherwise, naming fields by their JSON key.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("invalid request")
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case "required", "notblank":
		return apperrors.NewRequiredFieldError(first.Field())
	case "min":
		return apperrors.NewValidationError(fmt.Sprintf("%s must have at least %s item(s)", first.Field(), first.Param()))
	default:
		return apperrors.NewValidationError(first.Field() + " is invalid")
	}
}

// ValidABHAID reports whether id has the 14-digit ABHA number layout
// (xx-xxxx-xxxx-xxxx).
func ValidABHAID(id string) bool {
	return abhaPattern.MatchString(id)
}

func validateABHAID(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || ValidABHAID(v)
}
