package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gameon/handler"
	"github.com/dmitrymomot/gameon/pkg/binder"
	"github.com/dmitrymomot/gameon/pkg/logger"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	page := func(p handler.ErrorPageParams) templ.Component {
		return text(fmt.Sprintf("page %d %s", p.StatusCode, p.Error))
	}
	toast := func(p handler.ErrorToastParams) templ.Component {
		return text(`<div id="toast">` + p.Message + `</div>`)
	}

	tests := []struct {
		name     string
		err      error
		datastar bool
		cfg      handler.ErrorHandlerConfig
		code     int
		body     string
		level    string
	}{
		{
			name:  "generic error renders page",
			err:   errors.New("boom"),
			cfg:   handler.ErrorHandlerConfig{ErrorPage: page},
			code:  http.StatusInternalServerError,
			body:  "page 500 An error occurred processing your request",
			level: "ERROR",
		},
		{
			name:  "not found",
			err:   fmt.Errorf("lookup: %w", handler.NotFound(errors.New("no field"))),
			cfg:   handler.ErrorHandlerConfig{ErrorPage: page},
			code:  http.StatusNotFound,
			body:  "page 404 Not Found",
			level: "WARN",
		},
		{
			name:  "bind error without page",
			err:   fmt.Errorf("%w: bad", binder.ErrInvalidForm),
			code:  http.StatusBadRequest,
			body:  "Bad Request",
			level: "WARN",
		},
		{
			name:     "datastar toast",
			err:      errors.New("boom"),
			datastar: true,
			cfg:      handler.ErrorHandlerConfig{ErrorToast: toast},
			code:     http.StatusOK,
			body:     "datastar-patch-elements",
			level:    "ERROR",
		},
		{
			name:     "datastar without toast",
			err:      handler.NotFound(nil),
			datastar: true,
			code:     http.StatusNotFound,
			level:    "WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))

			req := httptest.NewRequest(http.MethodPost, "/fields/x/validate", nil)
			if tt.datastar {
				req = datastarRequest(http.MethodPost, "/fields/x/validate", nil)
			}
			rec := httptest.NewRecorder()

			handler.NewErrorHandler(log, tt.cfg)(handler.NewContext(rec, req), tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`)
			assert.Contains(t, buf.String(), `"component":"error_handler"`)
			assert.Contains(t, buf.String(), `"path":"/fields/x/validate"`)
		})
	}
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unknown field")
	err := handler.NotFound(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Not Found: unknown field", err.Error())
	assert.Equal(t, "Bad Request", handler.BadRequest(nil).Error())
}
