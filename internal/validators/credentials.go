package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants accepted by [CredentialsValidator].
const (
	// FieldEmail targets the e-mail address of a credentials pair.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a credentials pair.
	FieldPassword = "password"
)

// MinPasswordLength is the minimal number of characters in a password.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// CredentialsValidator implements [Validator] for signup and login input.
// The e-mail is expected to be normalised by the caller.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate checks models.Credentials (value or pointer). Without explicit
// fields both the e-mail and the password are checked.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(creds.Password) < MinPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
