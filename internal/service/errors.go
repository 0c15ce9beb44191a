package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenIssuance      = errors.New("could not create token")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError carries field-level validation messages. Requests failing
// validation never reach persistence.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
