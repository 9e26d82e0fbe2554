package client

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	msgUnreachable   = "Unable to reach the server"
	msgRequestFailed = "Request failed"
)

// ErrorBody is the structured body the API sends with non-2xx responses.
type ErrorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Error is the single shape every failed request is reported as.
// Status is 0 and Body is nil when no response was received.
type Error struct {
	Status  int
	Message string
	Body    *ErrorBody
	Cause   error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsNetwork reports whether the request never got a response.
func (e *Error) IsNetwork() bool {
	return e.Status == 0
}

func (e *Error) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

func (e *Error) IsValidation() bool {
	return e.Status == http.StatusUnprocessableEntity
}

// BodyMessage returns the server-provided message carried by err, or "" when there is none.
func BodyMessage(err error) string {
	var cerr *Error
	if errors.As(err, &cerr) && cerr.Body != nil {
		return cerr.Body.Message
	}
	return ""
}
