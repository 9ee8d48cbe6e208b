// Package binder decodes HTTP requests into tagged structs.
//
// Form reads url-encoded and multipart bodies (`form` tags) and Path reads
// router parameters (`path` tags) through an extractor such as chi.URLParam.
// Both return functions usable as handler binders and wrap failures in the
// package sentinel errors so callers can map them to 400 responses.
package binder
