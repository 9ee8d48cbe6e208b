package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/gameon/pkg/binder"
	"github.com/dmitrymomot/gameon/pkg/logger"
	"github.com/dmitrymomot/gameon/pkg/requestid"
)

// ErrorPageParams is the data for a full error page.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

// ErrorToastParams is the data for an in-page error notice.
type ErrorToastParams struct {
	Message   string
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders regular requests; nil falls back to http.Error.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders Datastar requests; nil sends nothing.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast".
	ToastTarget string
}

type errorInfo struct {
	status  int
	message string
	level   slog.Level
}

var bindErrors = []error{
	binder.ErrInvalidForm,
	binder.ErrInvalidPath,
	binder.ErrMissingContentType,
	binder.ErrUnsupportedMediaType,
}

func classifyError(err error) errorInfo {
	info := errorInfo{
		status:  http.StatusInternalServerError,
		message: "An error occurred processing your request",
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.status = httpErr.Code
		info.message = httpErr.Key
	case isBindError(err):
		info.status = http.StatusBadRequest
		info.message = http.StatusText(http.StatusBadRequest)
	}

	info.level = slog.LevelError
	if info.status < http.StatusInternalServerError {
		info.level = slog.LevelWarn
	}
	return info
}

func isBindError(err error) bool {
	for _, target := range bindErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// NewErrorHandler classifies errors into HTTP statuses, logs them and renders
// an error page for regular requests or a toast patch for Datastar requests.
// Client errors log at warn, server errors at error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast"
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		id := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.level, "request error",
			logger.RequestID(id),
			logger.Error(err),
			logger.StatusCode(info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			if cfg.ErrorToast == nil {
				w.WriteHeader(info.status)
				return
			}
			toast := cfg.ErrorToast(ErrorToastParams{Message: info.message, RequestID: id})
			if rerr := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(PatchInner)).Render(w, r); rerr != nil {
				log.ErrorContext(r.Context(), "failed to render error toast", logger.Error(rerr))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(w, info.message, info.status)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(info.status)
		page := cfg.ErrorPage(ErrorPageParams{Error: info.message, StatusCode: info.status, RequestID: id})
		if rerr := page.Render(r.Context(), w); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error page", logger.Error(rerr))
		}
	}
}
