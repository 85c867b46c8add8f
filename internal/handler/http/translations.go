// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-locale-sync/internal/app"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/service"
	"github.com/MKhiriev/go-locale-sync/internal/utils"
	"github.com/MKhiriev/go-locale-sync/models"
)

type localesResponse struct {
	Current   string   `json:"current"`
	Preferred string   `json:"preferred"`
	Available []string `json:"available"`
}

type setLocaleRequest struct {
	Locale string `json:"locale"`
}

type refreshResponse struct {
	Result  string `json:"result"`
	Version int64  `json:"version"`
}

type statusResponse struct {
	Loading    bool   `json:"loading"`
	State      string `json:"state"`
	Version    int64  `json:"version"`
	AppVersion string `json:"app_version,omitempty"`
}

// translate resolves {key} under the effective locale. Query parameters
// become interpolation params; only the first value of each is used.
func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.translate").Msg("invalid key escaping")
		utils.WriteError(w, app.MsgInvalidKey, http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	params := make(map[string]any, len(query))
	for name, values := range query {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.services.Localizer.T(key, params)))
}

func (h *Handler) getLocales(w http.ResponseWriter, r *http.Request) {
	localizer := h.services.Localizer

	available := localizer.AvailableLocales()
	if available == nil {
		available = []string{}
	}

	utils.WriteJSON(w, localesResponse{
		Current:   localizer.Locale(),
		Preferred: localizer.PreferredLocale(),
		Available: available,
	}, http.StatusOK)
}

func (h *Handler) setLocale(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req setLocaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.setLocale").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	locale := strings.TrimSpace(req.Locale)
	if locale == "" {
		utils.WriteError(w, app.MsgLocaleRequired, http.StatusBadRequest)
		return
	}

	if err := h.services.Localizer.SetLocale(r.Context(), locale); err != nil {
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// refresh forces a reconcile regardless of the remote version.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.Localizer.Refresh(r.Context())
	if err != nil {
		status := statusFromError(err)
		if !errors.Is(err, service.ErrRemoteSyncDisabled) {
			log.Err(err).Str("func", "*Handler.refresh").Msg("forced refresh failed")
		}
		utils.WriteError(w, err.Error(), status)
		return
	}
	if result == models.SyncFailed {
		utils.WriteError(w, app.MsgRefreshFailed, http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, refreshResponse{
		Result:  result.String(),
		Version: h.services.Localizer.Version(),
	}, http.StatusOK)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	localizer := h.services.Localizer

	resp := statusResponse{
		Loading: localizer.IsLoading(),
		State:   localizer.State().String(),
		Version: localizer.Version(),
	}
	if h.services.AppInfoService != nil {
		resp.AppVersion = h.services.AppInfoService.GetAppVersion(r.Context())
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
