package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-locale-sync/internal/service"
	"github.com/MKhiriev/go-locale-sync/internal/utils"
	"github.com/MKhiriev/go-locale-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

// ---- GET /api/translations/{key} ----

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "nested key", target: "/api/translations/menu.file", want: "File"},
		{name: "interpolation from query", target: "/api/translations/greet?name=Ada", want: "Hi Ada"},
		{name: "first query value wins", target: "/api/translations/greet?name=Ada&name=Bob", want: "Hi Ada"},
		{name: "missing key echoed", target: "/api/translations/no.such.key", want: "no.such.key"},
		{name: "escaped key", target: "/api/translations/menu%2Efile", want: "File"},
		{name: "placeholder kept without params", target: "/api/translations/greet", want: "Hi {{ name }}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newTestHandlerWith(newStubLocalizer()), http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

// ---- GET /api/locales ----

func TestGetLocales(t *testing.T) {
	loc := newStubLocalizer()
	loc.preferred = "de"

	rec := serve(t, newTestHandlerWith(loc), http.MethodGet, "/api/locales", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"current":"en","preferred":"de","available":["en","tr"]}`, rec.Body.String())
}

func TestGetLocales_EmptyTable(t *testing.T) {
	loc := newStubLocalizer()
	loc.table = models.LocaleTable{}

	rec := serve(t, newTestHandlerWith(loc), http.MethodGet, "/api/locales", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"current":"en","preferred":"","available":[]}`, rec.Body.String())
}

// ---- PUT /api/locale ----

func TestSetLocale(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setErr     error
		wantStatus int
		wantLocale string
		wantError  string
	}{
		{name: "available locale", body: `{"locale":"tr"}`, wantStatus: http.StatusNoContent, wantLocale: "tr"},
		{name: "trimmed locale", body: `{"locale":" tr "}`, wantStatus: http.StatusNoContent, wantLocale: "tr"},
		{name: "not available", body: `{"locale":"fr"}`, wantStatus: http.StatusUnprocessableEntity, wantLocale: "en", wantError: service.ErrLocaleNotAvailable.Error()},
		{name: "invalid json", body: `{"locale":`, wantStatus: http.StatusBadRequest, wantLocale: "en", wantError: "Invalid JSON was passed"},
		{name: "empty locale", body: `{"locale":""}`, wantStatus: http.StatusBadRequest, wantLocale: "en", wantError: "locale is required"},
		{name: "unexpected error", body: `{"locale":"tr"}`, setErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantLocale: "en", wantError: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := newStubLocalizer()
			loc.setLocaleErr = tt.setErr

			rec := serve(t, newTestHandlerWith(loc), http.MethodPut, "/api/locale", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocale, loc.Locale())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec))
			} else {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

// ---- POST /api/refresh ----

func TestRefresh(t *testing.T) {
	tests := []struct {
		name       string
		result     models.SyncResult
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "applied", result: models.SyncApplied, wantStatus: http.StatusOK, wantBody: `{"result":"applied","version":4}`},
		{name: "no change", result: models.SyncNoChange, wantStatus: http.StatusOK, wantBody: `{"result":"no_change","version":3}`},
		{name: "sync disabled", result: models.SyncNoChange, err: service.ErrRemoteSyncDisabled, wantStatus: http.StatusConflict},
		{name: "remote unreachable", result: models.SyncFailed, err: fmt.Errorf("%w: version: timeout", service.ErrTransientFetch), wantStatus: http.StatusBadGateway},
		{name: "bad document", result: models.SyncFailed, err: service.ErrReshape, wantStatus: http.StatusBadGateway},
		{name: "cache write", result: models.SyncFailed, err: service.ErrCacheWrite, wantStatus: http.StatusInternalServerError},
		{name: "failed without error", result: models.SyncFailed, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := newStubLocalizer()
			loc.refreshResult = tt.result
			loc.refreshErr = tt.err

			rec := serve(t, newTestHandlerWith(loc), http.MethodPost, "/api/refresh", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, 1, loc.refreshCalls)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.NotEmpty(t, decodeError(t, rec))
			}
		})
	}
}

// ---- GET /api/status ----

func TestGetStatus(t *testing.T) {
	loc := newStubLocalizer()
	loc.loading = true
	loc.state = models.BootstrapReconcileVersion

	rec := serve(t, newTestHandlerWith(loc), http.MethodGet, "/api/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"loading":true,"state":"reconcile_version","version":3,"app_version":"test-version"}`, rec.Body.String())
}
