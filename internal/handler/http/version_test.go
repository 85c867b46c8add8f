package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTranslationsVersion(t *testing.T) {
	loc := newStubLocalizer()
	loc.version = 42
	h := newTestHandlerWith(loc)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getTranslationsVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetAppVersion_WritesVersion(t *testing.T) {
	const want = "v2.0.0-beta+build.42"
	h := newTestHandlerWith(newStubLocalizer())
	h.services.AppInfoService = &mockAppInfoService{version: want}

	req := httptest.NewRequest(http.MethodGet, "/api/app/version", nil)
	rec := httptest.NewRecorder()

	h.getAppVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}
