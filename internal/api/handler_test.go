package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooloolooz/bumazhka/internal/api"
)

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	api.New(slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func postValidate(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleValidate(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	t.Run("valid number without type", func(t *testing.T) {
		rec := postValidate(t, router, `{"number":"1009900000000"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.ValidateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "any", resp.Type)
		assert.Equal(t, "1009900000000", resp.Number)
	})

	t.Run("valid number with explicit type", func(t *testing.T) {
		rec := postValidate(t, router, `{"number":"300990000000007","type":"ogrnip"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.ValidateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "ogrnip", resp.Type)
	})

	t.Run("invalid number is a verdict, not an error", func(t *testing.T) {
		rec := postValidate(t, router, `{"number":"1009900000009"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.ValidateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
	})

	t.Run("number is not trimmed", func(t *testing.T) {
		rec := postValidate(t, router, `{"number":" 1009900000000"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.ValidateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := postValidate(t, router, `{"number":"1009900000000","type":"inn"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "inn")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := postValidate(t, router, `{"number":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		rec := postValidate(t, router, ``)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized body", func(t *testing.T) {
		rec := postValidate(t, router, `{"number":"`+strings.Repeat("1", 10_000)+`"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
