package web

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/gameon/handler"
	"github.com/dmitrymomot/gameon/internal/metrics"
	"github.com/dmitrymomot/gameon/internal/signup"
	"github.com/dmitrymomot/gameon/pkg/logger"
)

// PanelRequest names the panel whose close button was pressed.
type PanelRequest struct {
	Panel string `path:"panel"`
}

// FieldRequest carries the field to validate and the current form values.
type FieldRequest struct {
	Field string `path:"field"`
	signup.Form
}

// Handlers serves the signup page. Each request builds its own engine, so
// Handlers holds no per-user state.
type Handlers struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*Handlers)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handlers) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMetrics counts validations and transitions. Nil disables counting.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handlers) { h.metrics = m }
}

// WithClock sets the time source of the age check.
func WithClock(now func() time.Time) Option {
	return func(h *Handlers) {
		if now != nil {
			h.now = now
		}
	}
}

func NewHandlers(opts ...Option) *Handlers {
	h := &Handlers{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handlers) engine(rec *recorder) *signup.Engine {
	return signup.NewEngine(h.metrics.Display(rec.display), signup.WithClock(h.now))
}

func formOpen(f signup.Form, errs map[signup.FieldID]signup.ErrorState) PageState {
	return PageState{
		Form:   f,
		Errors: errs,
		Panels: map[signup.Panel]bool{signup.PanelForm: true},
	}
}

// Page renders the landing page. ?modal=open shows the form panel.
func (h *Handlers) Page(ctx handler.Context, _ struct{}) handler.Response {
	state := PageState{Panels: map[signup.Panel]bool{}}
	if ctx.Request().URL.Query().Get("modal") == "open" {
		state.Panels[signup.PanelForm] = true
	}
	return handler.Templ(Page(state))
}

// OpenModal shows the form panel.
func (h *Handlers) OpenModal(ctx handler.Context, _ struct{}) handler.Response {
	rec := newRecorder()
	signup.OpenModal(h.metrics.Panels(rec.panels))

	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect("/?modal=open")
	}
	return handler.TemplMulti(nil, handler.Signals(rec.panels.signals()))
}

// CloseModal hides the panel named in the path.
func (h *Handlers) CloseModal(ctx handler.Context, req PanelRequest) handler.Response {
	panel, err := signup.ParsePanel(req.Panel)
	if err != nil {
		return handler.Error(handler.NotFound(err))
	}

	rec := newRecorder()
	signup.CloseModal(h.metrics.Panels(rec.panels), panel)

	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect("/")
	}
	return handler.TemplMulti(nil, handler.Signals(rec.panels.signals()))
}

// ValidateField runs the check bound to one field and patches its block.
func (h *Handlers) ValidateField(ctx handler.Context, req FieldRequest) handler.Response {
	rec := newRecorder()
	if _, err := h.engine(rec).ValidateField(req.Form, signup.FieldID(req.Field)); err != nil {
		return handler.Error(handler.NotFound(err))
	}

	state := formOpen(req.Form, rec.display.States())
	return handler.TemplMulti(Page(state), rec.fieldPatches(state)...)
}

// Submit runs the gate. A rejected form gets patches for the fields checked
// before the failure; an accepted one is reset and swapped for the
// confirmation panel.
func (h *Handlers) Submit(ctx handler.Context, req signup.Form) handler.Response {
	rec := newRecorder()
	gate := signup.NewGate(h.engine(rec), h.metrics.Panels(rec.panels), h.log)

	form := req
	ok := gate.Submit(ctx, &form)
	h.metrics.ObserveSubmission(ok)

	if !ok {
		state := formOpen(form, rec.display.States())
		return handler.TemplMulti(Page(state), rec.fieldPatches(state)...)
	}

	h.log.DebugContext(ctx, "signup confirmation sent",
		logger.Component("web"),
		logger.Panel(string(signup.PanelThanks)),
	)
	state := PageState{Form: form, Panels: rec.panels.visible}
	return handler.TemplMulti(Page(state),
		handler.Patch(SignupForm(state)),
		handler.Signals(rec.panels.signals()),
	)
}
