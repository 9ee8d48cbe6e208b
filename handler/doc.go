// Package handler provides typed HTTP handlers with Datastar-aware responses.
//
// Wrap turns a HandlerFunc[C, R] into an http.HandlerFunc: binders decode the
// request into R, decorators wrap the call, and the returned Response renders
// itself. Binding and render failures go to an ErrorHandler.
//
//	r.Post("/fields/{field}/validate", handler.Wrap(h.ValidateField,
//		handler.WithBinders[handler.Context, FieldRequest](binder.Path(chi.URLParam), binder.Form()),
//		handler.WithErrorHandler[handler.Context, FieldRequest](errorHandler),
//	))
//
// # Responses
//
// Templ renders one templ component, as a Datastar element patch when the
// request came from Datastar and as HTML otherwise. TemplMulti sends several
// patches in one SSE stream and falls back to a full component for regular
// requests. Redirect and Empty cover navigation and no-content replies.
//
// # Errors
//
// HTTPError carries a status for the error handler. NewErrorHandler maps
// HTTPError and pkg/binder failures onto statuses, logs through pkg/logger
// and renders a page or a toast patch.
package handler
