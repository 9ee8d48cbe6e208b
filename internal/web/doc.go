// Package web is the HTTP surface of the signup modal.
//
// Pages and fragments are templ components. Datastar actions get SSE
// patches: one element patch per field block the engine touched, and signal
// patches for panel visibility. Requests without Datastar get a full page
// with the same data-error attributes, so the form works without scripts.
package web
