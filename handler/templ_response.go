package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures a Datastar element patch.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patch applies to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one SSE event: a component patch with its options, or a
// signals patch when Signals is set.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
	Signals   map[string]any
}

func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// Signals merges signals into the client store.
func Signals(signals map[string]any) TemplPatch {
	return TemplPatch{Signals: signals}
}

func (p TemplPatch) send(sse *datastar.ServerSentEventGenerator) error {
	if p.Signals != nil {
		data, err := json.Marshal(p.Signals)
		if err != nil {
			return err
		}
		return sse.PatchSignals(data)
	}
	return sse.PatchElementTempl(p.Component, p.Options...)
}

func renderHTML(w http.ResponseWriter, r *http.Request, c TemplComponent) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return c.Render(r.Context(), w)
}

type templResponse struct {
	component TemplComponent
	options   []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}
	return renderHTML(w, r, t.component)
}

// Templ renders component as one Datastar patch, or as HTML for regular requests.
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

type templPatchesResponse struct {
	full    TemplComponent
	patches []TemplPatch
}

func (t templPatchesResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		if t.full == nil {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
		return renderHTML(w, r, t.full)
	}

	sse := datastar.NewSSE(w, r)
	for _, p := range t.patches {
		if err := p.send(sse); err != nil {
			return err
		}
	}
	return nil
}

// TemplMulti sends every patch as its own SSE event to Datastar requests and
// renders full for regular requests. A nil full answers 204 to regular
// requests. An empty patch list opens and closes the stream without events.
//
//	return handler.TemplMulti(views.Page(state),
//		handler.Patch(views.Field(first), handler.WithTarget("#field-first")),
//		handler.Patch(views.Field(email), handler.WithTarget("#field-email")),
//	)
func TemplMulti(full TemplComponent, patches ...TemplPatch) Response {
	return templPatchesResponse{full: full, patches: patches}
}
