package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory bounds in-memory multipart parsing.
const DefaultMaxMemory = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// into fields tagged `form:"name"`. Fields tagged `form:"-"` and untagged
// fields are skipped; absent keys leave the field unchanged. Bool fields accept
// checkbox values such as "on".
//
//	type SignupRequest struct {
//		First      string `form:"first"`
//		Conditions bool   `form:"checkbox1"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrMissingContentType
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindValues(v, "form", r.PostForm, ErrInvalidForm)
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindValues(v, "form", r.MultipartForm.Value, ErrInvalidForm)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}
	}
}
