package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries an HTTP status and a public message key. Err keeps the
// underlying cause for logs and errors.Is.
type HTTPError struct {
	Code int
	Key  string
	Err  error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Key + ": " + e.Err.Error()
	}
	return e.Key
}

func (e HTTPError) Unwrap() error { return e.Err }

// NewHTTPError builds an HTTPError with the standard status text as key.
func NewHTTPError(code int, cause error) HTTPError {
	return HTTPError{Code: code, Key: http.StatusText(code), Err: cause}
}

// NotFound wraps cause as a 404.
func NotFound(cause error) HTTPError {
	return NewHTTPError(http.StatusNotFound, cause)
}

// BadRequest wraps cause as a 400.
func BadRequest(cause error) HTTPError {
	return NewHTTPError(http.StatusBadRequest, cause)
}
