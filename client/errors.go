package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

// Exception classes reported by the server.
var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUserNotAuthorized = errors.New("user not authorized")
	ErrPropertyServer    = errors.New("property server error")
	ErrNotFound          = errors.New("not found")
)

// ExceptionError is a failed FFDC response returned by the server.
type ExceptionError struct {
	status   int
	response dto.FFDCResponseBase
}

func newExceptionError(status int, ffdc *dto.FFDCResponseBase) *ExceptionError {
	e := &ExceptionError{status: status}
	if ffdc != nil {
		e.response = *ffdc.Clone()
		if e.response.RelatedHTTPCode != 0 {
			e.status = e.response.RelatedHTTPCode
		}
	}
	return e
}

// Error implements the error interface.
func (e *ExceptionError) Error() string {
	msg := e.response.ExceptionErrorMessage
	if msg == "" {
		msg = http.StatusText(e.status)
	}
	if e.response.ExceptionErrorMessageID != "" {
		msg = e.response.ExceptionErrorMessageID + " " + msg
	}
	if e.response.ActionDescription != "" {
		return fmt.Sprintf("%s: %s", e.response.ActionDescription, msg)
	}
	return msg
}

// Is matches the sentinel for the exception class and for 404 responses.
func (e *ExceptionError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.status == http.StatusNotFound
	case ErrUserNotAuthorized:
		return e.response.ExceptionClassName == "UserNotAuthorizedException" || e.status == http.StatusUnauthorized
	case ErrPropertyServer:
		return e.response.ExceptionClassName == "PropertyServerException"
	case ErrInvalidParameter:
		return e.response.ExceptionClassName == "InvalidParameterException"
	}
	return false
}

// StatusCode returns the HTTP status of the failure.
func (e *ExceptionError) StatusCode() int { return e.status }

// Response returns a copy of the FFDC fields.
func (e *ExceptionError) Response() dto.FFDCResponseBase {
	return *e.response.Clone()
}

// ConnectionError is a failure to reach the server or read its reply.
type ConnectionError struct {
	url   string
	cause error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s: %v", e.url, e.cause)
}

// Unwrap returns the underlying cause.
func (e *ConnectionError) Unwrap() error { return e.cause }

// URL returns the request URL that failed.
func (e *ConnectionError) URL() string { return e.url }
