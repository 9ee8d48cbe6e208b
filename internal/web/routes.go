package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/gameon/handler"
	"github.com/dmitrymomot/gameon/internal/signup"
	"github.com/dmitrymomot/gameon/pkg/binder"
	"github.com/dmitrymomot/gameon/pkg/environment"
	"github.com/dmitrymomot/gameon/pkg/httpserver"
	"github.com/dmitrymomot/gameon/pkg/requestid"
)

// NewRouter mounts the page, modal, validation, health and metrics routes.
func NewRouter(h *Handlers, env environment.Environment) http.Handler {
	errs := handler.NewErrorHandler(h.log, handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage,
		ErrorToast: ErrorToast,
	})

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		environment.Middleware(env),
		middleware.Recoverer,
	)

	r.Get("/", handler.Wrap(h.Page,
		handler.WithErrorHandler[handler.Context, struct{}](errs),
	))
	r.Post("/modal/open", handler.Wrap(h.OpenModal,
		handler.WithErrorHandler[handler.Context, struct{}](errs),
	))
	r.Post("/modal/{panel}/close", handler.Wrap(h.CloseModal,
		handler.WithBinders[handler.Context, PanelRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, PanelRequest](errs),
	))
	r.Post("/fields/{field}/validate", handler.Wrap(h.ValidateField,
		handler.WithBinders[handler.Context, FieldRequest](binder.Path(chi.URLParam), binder.Form()),
		handler.WithErrorHandler[handler.Context, FieldRequest](errs),
	))
	r.Post("/signup", handler.Wrap(h.Submit,
		handler.WithBinders[handler.Context, signup.Form](binder.Form()),
		handler.WithErrorHandler[handler.Context, signup.Form](errs),
	))

	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	return r
}
