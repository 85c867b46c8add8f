// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-locale-sync/internal/config"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/utils"
)

var jsonNull = json.RawMessage("null")

type firebaseRemoteSource struct {
	client       *utils.HTTPClient
	streamClient *utils.HTTPClient

	authToken  string
	retryDelay time.Duration

	logger *logger.Logger
}

// NewFirebaseRemoteSource constructs a Firebase Realtime Database REST
// implementation of [RemoteSource].
//
// Reads use adapterCfg.RequestTimeout; subscription streams use a separate
// client without a timeout and reconnect after adapterCfg.StreamRetryDelay.
// An expired JWT auth token is reported as a warning but does not fail
// construction, the remote decides whether it is still accepted.
//
// Returns an error wrapping [ErrInvalidRemoteAddress] if adapterCfg.Address is
// empty or cannot be parsed as a URL with a host.
func NewFirebaseRemoteSource(adapterCfg config.ClientAdapter, log *logger.Logger) (RemoteSource, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRemoteAddress, err)
	}

	token := strings.TrimSpace(adapterCfg.AuthToken)
	if token != "" && utils.LooksLikeJWT(token) {
		expired, err := utils.IsTokenExpired(token, time.Now())
		switch {
		case err != nil:
			log.Debug().Err(err).Str("func", "NewFirebaseRemoteSource").Msg("auth token expiry is unknown")
		case expired:
			log.Warn().Str("func", "NewFirebaseRemoteSource").Msg("remote auth token is expired, requests will likely be rejected")
		}
	}

	retryDelay := adapterCfg.StreamRetryDelay
	if retryDelay <= 0 {
		retryDelay = config.DefaultStreamRetryDelay
	}

	log.Info().Str("base_url", baseURL).Msg("firebase remote source created")

	return &firebaseRemoteSource{
		client:       utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		streamClient: utils.NewHTTPClient(baseURL, 0),
		authToken:    token,
		retryDelay:   retryDelay,
		logger:       log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// resourcePath maps a database path to its REST resource ("a/b" -> "/a/b.json").
func resourcePath(path string) string {
	return "/" + strings.Trim(path, "/") + ".json"
}

func (f *firebaseRemoteSource) queryParams() map[string]string {
	if f.authToken == "" {
		return nil
	}
	return map[string]string{"auth": f.authToken}
}

// Read implements [RemoteSource]. It issues GET /<path>.json and returns the
// response body verbatim. An empty body is reported as null.
func (f *firebaseRemoteSource) Read(ctx context.Context, path string) (json.RawMessage, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(f.queryParams()).
		Get(resourcePath(path))
	if err != nil {
		return nil, fmt.Errorf("read %q request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return jsonNull, nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("read %q: response is not valid JSON", path)
	}

	return json.RawMessage(body), nil
}
