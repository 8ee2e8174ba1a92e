package domain

import (
	stderrors "errors"
	"fmt"
	"hotel-admin/errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks a command's struct rules and turns violations into one readable error.
// Missing fields wrap ErrMissingField, every other violation wraps ErrInvalidInput.
func Validate(command any) error {
	err := validate.Struct(command)
	if err == nil {
		return nil
	}
	var violations validator.ValidationErrors
	if !stderrors.As(err, &violations) {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}

	missing := lo.FilterMap(violations, func(fe validator.FieldError, _ int) (string, bool) {
		return fe.Field(), fe.Tag() == "required"
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s is required", errors.ErrMissingField, strings.Join(missing, ", "))
	}

	invalid := lo.Map(violations, func(fe validator.FieldError, _ int) string {
		return fmt.Sprintf("%s is not a valid %s", fe.Field(), fe.Tag())
	})
	return fmt.Errorf("%w: %s", errors.ErrInvalidInput, strings.Join(invalid, ", "))
}
