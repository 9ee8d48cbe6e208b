package binder_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gameon/pkg/binder"
)

type signupRequest struct {
	First      string   `form:"first"`
	Quantity   string   `form:"quantity"`
	Conditions bool     `form:"checkbox1"`
	Newsletter bool     `form:"checkbox2"`
	Tags       []string `form:"tag"`
	Age        *int     `form:"age"`
	Skipped    string   `form:"-"`
	Untagged   string
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds url-encoded body", func(t *testing.T) {
		t.Parallel()
		req := formRequest(url.Values{
			"first":     {"Marie"},
			"quantity":  {"007"},
			"checkbox1": {"on"},
			"tag":       {"a", "b"},
			"age":       {"30"},
			"Skipped":   {"x"},
			"untagged":  {"y"},
		})

		var got signupRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Marie", got.First)
		assert.Equal(t, "007", got.Quantity)
		assert.True(t, got.Conditions)
		assert.False(t, got.Newsletter)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
		require.NotNil(t, got.Age)
		assert.Equal(t, 30, *got.Age)
		assert.Empty(t, got.Skipped)
		assert.Empty(t, got.Untagged)
	})

	t.Run("binds multipart body", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("first", "Marie"))
		require.NoError(t, mw.WriteField("checkbox1", "true"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/signup", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got signupRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Marie", got.First)
		assert.True(t, got.Conditions)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		assert.ErrorIs(t, binder.Form()(req, &signupRequest{}), binder.ErrMissingContentType)

		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, binder.Form()(req, &signupRequest{}), binder.ErrUnsupportedMediaType)

		req = formRequest(url.Values{"checkbox1": {"maybe"}})
		assert.ErrorIs(t, binder.Form()(req, &signupRequest{}), binder.ErrInvalidForm)

		req = formRequest(url.Values{"first": {"x"}})
		assert.ErrorIs(t, binder.Form()(req, signupRequest{}), binder.ErrInvalidForm)
	})
}

type person struct {
	First string `form:"first"`
}

type fieldRequest struct {
	Field string `path:"field"`
	person
}

func TestPath(t *testing.T) {
	t.Parallel()

	t.Run("binds chi params", func(t *testing.T) {
		t.Parallel()
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("field", "email")

		req := formRequest(url.Values{"first": {"Marie"}})
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		var got fieldRequest
		require.NoError(t, binder.Path(chi.URLParam)(req, &got))
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "email", got.Field)
		assert.Equal(t, "Marie", got.First)
	})

	t.Run("nil extractor", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.ErrorIs(t, binder.Path(nil)(req, &fieldRequest{}), binder.ErrInvalidPath)
	})
}
