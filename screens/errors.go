package screens

import (
	"errors"

	"github.com/deffiedeff2/event-app/images"
)

// Failure taxonomy shared by all screen controllers. Validation failures
// carry the inline message to show; the sentinels classify everything else.
var (
	// ErrNotFound means the referenced user or event is absent from storage.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means the acting user does not own the entity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotLoggedIn means the action requires a session user.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrDuplicateRSVP means the user already RSVP'd to the event.
	ErrDuplicateRSVP = errors.New("already RSVP'd")
)

// ValidationError is a field-level validation failure. It is surfaced inline
// and never persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a validation failure, including image
// upload rejections bubbled up from the images package.
func IsValidation(err error) bool {
	var ve *ValidationError
	var ie *images.ValidationError
	return errors.As(err, &ve) || errors.As(err, &ie)
}
