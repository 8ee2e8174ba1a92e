package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField        = fmt.Errorf("missing required field")
	ErrInvalidInput        = fmt.Errorf("invalid input")
	ErrSubmissionInFlight  = fmt.Errorf("a submission is already in flight")
	ErrTransport           = fmt.Errorf("transport failure")
	ErrUnexpectedStatus    = fmt.Errorf("unexpected response status")
	ErrUnparseableResponse = fmt.Errorf("unparseable response body")
	ErrSessionNotFound     = fmt.Errorf("session not found")
	ErrInvalidToken        = fmt.Errorf("invalid token")
	ErrUnknownResetPolicy  = fmt.Errorf("unknown reset policy")
	ErrSessionExpired      = fmt.Errorf("session expired")
)

// APIError is a backend answer that is not a success.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend answered %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Message extracts the text to show a user from an error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
