package http

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/service"
	"github.com/MKhiriev/go-locale-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// stubLocalizer implements service.Localizer over a fixed table.
type stubLocalizer struct {
	mu        sync.Mutex
	table     models.LocaleTable
	current   string
	preferred string
	version   int64
	loading   bool
	state     models.BootstrapState

	refreshResult models.SyncResult
	refreshErr    error
	refreshCalls  int
	setLocaleErr  error
}

func newStubLocalizer() *stubLocalizer {
	return &stubLocalizer{
		table: models.LocaleTable{
			"en": {"greet": "Hi {{ name }}", "menu": map[string]any{"file": "File"}},
			"tr": {"greet": "Merhaba {{ name }}"},
		},
		current:       "en",
		version:       3,
		state:         models.BootstrapReady,
		refreshResult: models.SyncApplied,
	}
}

func (s *stubLocalizer) T(key string, params map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return service.Resolve(s.table, s.current, "en", key, params)
}

func (s *stubLocalizer) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *stubLocalizer) PreferredLocale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferred
}

func (s *stubLocalizer) SetLocale(_ context.Context, locale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setLocaleErr != nil {
		return s.setLocaleErr
	}
	if !s.table.Has(locale) {
		return service.ErrLocaleNotAvailable
	}
	s.current, s.preferred = locale, locale
	return nil
}

func (s *stubLocalizer) AvailableLocales() []string { return s.table.Locales() }
func (s *stubLocalizer) IsLoading() bool            { return s.loading }
func (s *stubLocalizer) Version() int64             { return s.version }
func (s *stubLocalizer) Bootstrap(context.Context) error {
	return nil
}
func (s *stubLocalizer) State() models.BootstrapState { return s.state }

func (s *stubLocalizer) Refresh(context.Context) (models.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCalls++
	if s.refreshResult == models.SyncApplied {
		s.version++
	}
	return s.refreshResult, s.refreshErr
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func newTestHandlerWith(localizer service.Localizer) *Handler {
	return NewHandler(&service.Services{
		Localizer:      localizer,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
