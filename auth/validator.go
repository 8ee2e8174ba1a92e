package auth

import (
	stderrors "errors"
	"fmt"
	"hotel-admin/domain"
	"hotel-admin/errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

type otpRequest struct {
	Email string `validate:"required"`
	OTP   string `validate:"required"`
}

type loginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type signupRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

// ValidateVerifyOTP rejects a verification request with a missing email or passcode.
// The message always names both fields so the user knows what the form expects.
func ValidateVerifyOTP(req domain.VerifyOTPRequest) error {
	err := validate.Struct(otpRequest{Email: req.Email, OTP: req.OTP})
	if err == nil {
		return nil
	}
	missing := missingFields(err)
	switch len(missing) {
	case 0:
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	case 1:
		return fmt.Errorf("%w: Email and OTP are required, %s is missing", errors.ErrMissingField, missing[0])
	default:
		return fmt.Errorf("%w: Email and OTP are required", errors.ErrMissingField)
	}
}

func ValidateLogin(req domain.LoginRequest) error {
	return wrap(validate.Struct(loginRequest{Email: req.Email, Password: req.Password}))
}

func ValidateSignup(req domain.SignupRequest) error {
	if err := wrap(validate.Struct(signupRequest{Email: req.Email, Password: req.Password})); err != nil {
		return err
	}
	if !isPasswordComplex(req.Password) {
		return fmt.Errorf("%w: Password needs upper and lower case letters, a digit and a symbol", errors.ErrInvalidInput)
	}
	return nil
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	if missing := missingFields(err); len(missing) > 0 {
		return fmt.Errorf("%w: %s is required", errors.ErrMissingField, strings.Join(missing, " and "))
	}
	return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
}

func missingFields(err error) []string {
	var violations validator.ValidationErrors
	if !stderrors.As(err, &violations) {
		return nil
	}
	return lo.FilterMap(violations, func(fe validator.FieldError, _ int) (string, bool) {
		return fe.Field(), fe.Tag() == "required"
	})
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
