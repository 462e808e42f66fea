package service

import "errors"

// Invalid state-transition errors. Confirmed and cancelled are terminal
// states; repeating a transition is rejected rather than made a no-op.
var (
	ErrAlreadyConfirmed = errors.New("this booking is already confirmed")
	ErrAlreadyCancelled = errors.New("this booking is already cancelled")
	ErrNotConfirmed     = errors.New("only confirmed bookings can download confirmation forms")
)

// ValidationError reports missing or malformed required input. Handlers
// translate it into an HTTP 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
