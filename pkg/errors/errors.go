package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Resolution failure kinds
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNoMedia             = errors.New("no media")
	ErrNoDownloadableMedia = errors.New("no downloadable media")
	ErrInternalServer      = errors.New("internal server error")
)

// Error codes carried by *Error
const (
	CodeInvalidInput        = "invalid_input"
	CodeNotFound            = "not_found"
	CodeNoMedia             = "no_media"
	CodeNoDownloadableMedia = "no_downloadable_media"
	CodeInternal            = "internal"
)

// DefaultMessage is shown to users for failures without a message of their own.
const DefaultMessage = "Failed to fetch media. Please try again."

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the user-facing message. Errors that never went
// through WrapWithCode get DefaultMessage so internals are not leaked.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return DefaultMessage
}

// HTTPStatus maps an error to the status code returned by the resolve API.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsInvalidInput(err), IsNoMedia(err), IsNoDownloadableMedia(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsInvalidInput returns true if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNoMedia returns true if the post carried no media block
func IsNoMedia(err error) bool {
	return errors.Is(err, ErrNoMedia)
}

// IsNoDownloadableMedia returns true if the media block had no known kinds
func IsNoDownloadableMedia(err error) bool {
	return errors.Is(err, ErrNoDownloadableMedia)
}

// IsInternalServer returns true if the error is an internal server error
func IsInternalServer(err error) bool {
	return errors.Is(err, ErrInternalServer)
}
