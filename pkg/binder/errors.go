package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidPath          = errors.New("invalid path parameters")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
)
