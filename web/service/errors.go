package service

import "errors"

// ValidationError marks malformed client input. Controllers surface it as a
// 400; it is never retried automatically.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func newValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	// ErrInvalidPassword is returned by the admin gate on a wrong password.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrPasswordNotSet is returned when no admin password has been
	// configured. Fatal for the admin subsystem only.
	ErrPasswordNotSet = errors.New("admin password is not configured")
)
