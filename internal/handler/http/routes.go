package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// cacheable reads
	router.Group(func(r chi.Router) {
		r.Use(h.withETag)
		r.Get("/api/translations/{key}", h.translate)
		r.Get("/api/locales", h.getLocales)
		r.Get("/api/version", h.getTranslationsVersion)
	})

	router.Put("/api/locale", h.setLocale)
	router.Post("/api/refresh", h.refresh)
	router.Get("/api/status", h.getStatus)
	router.Get("/api/app/version", h.getAppVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
