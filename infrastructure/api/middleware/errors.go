package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openmeta/omrest/domain"
	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

// Base API errors as sentinels.
var (
	// ErrAPI is the base error for all API-related errors.
	ErrAPI = errors.New("api error")

	// ErrAuthentication indicates authentication failure.
	ErrAuthentication = errors.New("authentication failed")

	// ErrServer indicates the server failed to handle a request.
	ErrServer = errors.New("server error")
)

// Exception class names reported in FFDC responses.
const (
	InvalidParameterException  = "InvalidParameterException"
	UserNotAuthorizedException = "UserNotAuthorizedException"
	PropertyServerException    = "PropertyServerException"
)

// APIError represents a request the API layer rejected before it reached a service.
type APIError struct {
	code    int
	message string
	cause   error
}

// NewAPIError creates a new APIError.
func NewAPIError(code int, message string, cause error) *APIError {
	return &APIError{
		code:    code,
		message: message,
		cause:   cause,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("api error %d: %s", e.code, e.message)
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	return e.cause
}

// Is reports whether target is ErrAPI.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// Code returns the error code.
func (e *APIError) Code() int {
	return e.code
}

// Message returns the error message.
func (e *APIError) Message() string {
	return e.message
}

// AuthenticationError represents an authentication failure.
type AuthenticationError struct {
	message string
}

// NewAuthenticationError creates a new AuthenticationError.
func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{message: message}
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.message)
}

// Unwrap returns the base authentication error for errors.Is compatibility.
func (e *AuthenticationError) Unwrap() error {
	return ErrAuthentication
}

// ServerError represents a server-side error.
type ServerError struct {
	statusCode int
	message    string
}

// NewServerError creates a new ServerError.
func NewServerError(statusCode int, message string) *ServerError {
	return &ServerError{
		statusCode: statusCode,
		message:    message,
	}
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.statusCode, e.message)
}

// Unwrap returns the base server error for errors.Is compatibility.
func (e *ServerError) Unwrap() error {
	return ErrServer
}

// StatusCode returns the HTTP status code.
func (e *ServerError) StatusCode() int {
	return e.statusCode
}

// Message returns the error message.
func (e *ServerError) Message() string {
	return e.message
}

// failure describes how an error is reported to the caller.
type failure struct {
	status       int
	seq          int
	className    string
	message      string
	causedBy     string
	systemAction string
	userAction   string
}

func classify(err error) failure {
	var apiErr *APIError
	var serverErr *ServerError
	var authErr *AuthenticationError

	switch {
	case errors.As(err, &authErr):
		return failure{
			status:       http.StatusUnauthorized,
			seq:          1,
			className:    UserNotAuthorizedException,
			message:      authErr.Error(),
			systemAction: "The request was rejected before it was processed.",
			userAction:   "Supply a valid API key in the X-API-KEY header.",
		}
	case errors.As(err, &apiErr):
		f := failure{
			status:       apiErr.Code(),
			seq:          2,
			className:    InvalidParameterException,
			message:      apiErr.Message(),
			systemAction: "The request was rejected before it was processed.",
			userAction:   "Correct the request and retry.",
		}
		if apiErr.Unwrap() != nil {
			f.causedBy = apiErr.Unwrap().Error()
		}
		if f.status >= http.StatusInternalServerError {
			f.className = PropertyServerException
		}
		return f
	case errors.As(err, &serverErr):
		return failure{
			status:       serverErr.StatusCode(),
			seq:          1,
			className:    PropertyServerException,
			message:      serverErr.Message(),
			systemAction: "The server was unable to complete the request.",
			userAction:   "Retry the request later.",
		}
	case errors.Is(err, domain.ErrNotFound):
		return failure{
			status:       http.StatusNotFound,
			seq:          1,
			className:    InvalidParameterException,
			message:      err.Error(),
			causedBy:     domain.ErrNotFound.Error(),
			systemAction: "The requested element could not be found.",
			userAction:   "Check the GUID or path name and retry.",
		}
	case errors.Is(err, domain.ErrValidation):
		return failure{
			status:       http.StatusBadRequest,
			seq:          1,
			className:    InvalidParameterException,
			message:      err.Error(),
			causedBy:     domain.ErrValidation.Error(),
			systemAction: "The request was rejected without changing any element.",
			userAction:   "Correct the request and retry.",
		}
	case errors.Is(err, domain.ErrConflict):
		return failure{
			status:       http.StatusConflict,
			seq:          1,
			className:    InvalidParameterException,
			message:      err.Error(),
			causedBy:     domain.ErrConflict.Error(),
			systemAction: "The request was rejected without changing any element.",
			userAction:   "Choose a different name or remove the existing element.",
		}
	}
	return failure{
		status:       http.StatusInternalServerError,
		seq:          1,
		className:    PropertyServerException,
		message:      "internal server error",
		causedBy:     err.Error(),
		systemAction: "The server was unable to complete the request.",
		userAction:   "Retry the request later or contact the administrator.",
	}
}

// ErrorResponse builds the FFDC response reported for err.
func ErrorResponse(r *http.Request, action string, err error) dto.VoidResponse {
	f := classify(err)

	resp := dto.VoidResponse{FFDCResponseBase: dto.FFDCResponseBase{
		RelatedHTTPCode:         f.status,
		ExceptionClassName:      f.className,
		ExceptionCausedBy:       f.causedBy,
		ActionDescription:       action,
		ExceptionErrorMessage:   f.message,
		ExceptionErrorMessageID: fmt.Sprintf("OMREST-%d-%03d", f.status, f.seq),
		ExceptionSystemAction:   f.systemAction,
		ExceptionUserAction:     f.userAction,
	}}
	if guid := chi.URLParam(r, "guid"); guid != "" {
		resp.ExceptionErrorMessageParameters = []string{guid}
	}
	if id := GetCorrelationID(r.Context()); id != "" {
		resp.ExceptionProperties = map[string]any{"correlationId": id}
	}
	return resp
}

// WriteError writes err as an FFDC VoidResponse with the matching HTTP status.
func WriteError(w http.ResponseWriter, r *http.Request, action string, err error, logger *slog.Logger) {
	resp := ErrorResponse(r, action, err)

	if logger != nil {
		level := slog.LevelWarn
		if resp.RelatedHTTPCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(r.Context(), level, "request error",
			"correlation_id", GetCorrelationID(r.Context()),
			"action", action,
			"status", resp.RelatedHTTPCode,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	WriteJSON(w, resp.RelatedHTTPCode, resp)
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
