package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		DefaultLocale  string `json:"default_locale"`
		FallbackLocale string `json:"fallback_locale"`
		StorageKey     string `json:"storage_key"`
		BundlePath     string `json:"bundle_path"`
		LogLevel       string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Address             string   `json:"address"`
		AuthToken           string   `json:"auth_token"`
		RequestTimeout      Duration `json:"request_timeout"`
		TranslationsPath    string   `json:"translations_path"`
		VersionPath         string   `json:"translations_version_path"`
		DisableRemoteSync   bool     `json:"disable_remote_sync"`
		DisableFirebaseSync bool     `json:"disable_firebase_sync"`
		StreamRetryDelay    Duration `json:"stream_retry_delay"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PollIntervalMS *int64 `json:"poll_interval_ms"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var pollInterval string
	if jsonCfg.Workers.PollIntervalMS != nil {
		pollInterval = strconv.FormatInt(*jsonCfg.Workers.PollIntervalMS, 10)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultLocale:  jsonCfg.App.DefaultLocale,
			FallbackLocale: jsonCfg.App.FallbackLocale,
			StorageKey:     jsonCfg.App.StorageKey,
			BundlePath:     jsonCfg.App.BundlePath,
			LogLevel:       jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Address:             jsonCfg.Adapter.Address,
			AuthToken:           jsonCfg.Adapter.AuthToken,
			RequestTimeout:      time.Duration(jsonCfg.Adapter.RequestTimeout),
			TranslationsPath:    jsonCfg.Adapter.TranslationsPath,
			VersionPath:         jsonCfg.Adapter.VersionPath,
			DisableRemoteSync:   jsonCfg.Adapter.DisableRemoteSync,
			DisableFirebaseSync: jsonCfg.Adapter.DisableFirebaseSync,
			StreamRetryDelay:    time.Duration(jsonCfg.Adapter.StreamRetryDelay),
		},
		Workers:      Workers{PollIntervalMS: pollInterval},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
