package binder

import (
	"fmt"
	"net/http"
)

// Path binds router path parameters into fields tagged `path:"name"`.
// The extractor reads one parameter by name; chi.URLParam fits directly.
//
//	r.Post("/fields/{field}/validate", handler.Wrap(h,
//		handler.WithBinders[handler.Context, fieldRequest](binder.Path(chi.URLParam), binder.Form()),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: nil extractor", ErrInvalidPath)
		}

		names, err := taggedNames(v, "path")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}

		values := make(map[string][]string, len(names))
		for _, name := range names {
			if value := extractor(r, name); value != "" {
				values[name] = []string{value}
			}
		}
		return bindValues(v, "path", values, ErrInvalidPath)
	}
}
