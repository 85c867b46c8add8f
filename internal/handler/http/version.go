package http

import (
	"net/http"
	"strconv"
)

// getTranslationsVersion writes the version of the table being served.
func (h *Handler) getTranslationsVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.Localizer.Version()

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(strconv.FormatInt(version, 10)))
}

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	appVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(appVersion))
}
