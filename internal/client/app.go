package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-locale-sync/internal/adapter"
	"github.com/MKhiriev/go-locale-sync/internal/config"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/service"
	"github.com/MKhiriev/go-locale-sync/internal/store"
)

var errNoServices = errors.New("client services are not specified")

type App struct {
	services *service.Services
	keys     []string
	out      io.Writer
	closer   func() error
	logger   *logger.Logger
}

// NewApp opens the storages, the remote source and the bundle described by
// cfg and builds the services on top of them. The remote source is skipped
// entirely when remote sync is disabled.
func NewApp(ctx context.Context, cfg *config.ClientConfig, appVersion string, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	var remote adapter.RemoteSource
	if !cfg.Adapter.DisableRemoteSync {
		remote, err = adapter.NewFirebaseRemoteSource(cfg.Adapter, log)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create remote source: %w", err)
		}
	}

	bundle, err := service.LoadBundle(cfg.App.BundlePath)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	svcs, err := service.NewServices(cfg, remote, storages.Cache, bundle, appVersion, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	return newApp(svcs, cfg.Args, os.Stdout, storages.Close, log)
}

func newApp(services *service.Services, keys []string, out io.Writer, closer func() error, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	if closer == nil {
		closer = func() error { return nil }
	}

	return &App{
		services: services,
		keys:     keys,
		out:      out,
		closer:   closer,
		logger:   log,
	}, nil
}

// Services exposes the runtime for transports layered on top of the app.
func (a *App) Services() *service.Services {
	return a.services
}

// Start bootstraps the localizer and arms the sync job when the engine may
// contact the remote.
func (a *App) Start(ctx context.Context) error {
	if err := a.services.Localizer.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	if a.services.SyncEngine != nil && a.services.SyncEngine.Enabled() {
		a.services.SyncJob.Start(ctx)
	} else {
		a.logger.Info().Msg("remote sync is disabled, sync job is not started")
	}

	return nil
}

// Stop halts the sync job and releases the storages.
func (a *App) Stop() {
	a.services.SyncJob.Stop()

	if err := a.closer(); err != nil {
		a.logger.Err(err).Msg("close storages")
	}
}

// Run resolves the configured keys and exits. Without keys it keeps the
// runtime alive, reporting every applied table, until a termination signal.
func (a *App) Run(ctx context.Context) error {
	if len(a.keys) > 0 {
		if err := a.Start(ctx); err != nil {
			return err
		}
		defer a.Stop()

		return a.printKeys()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if a.services.SyncEngine != nil {
		a.services.SyncEngine.OnApplied(func(version int64) {
			fmt.Fprintf(a.out, "translations updated: version %d\n", version)
		})
	}

	if err := a.Start(ctx); err != nil {
		return err
	}
	defer a.Stop()

	l := a.services.Localizer
	fmt.Fprintf(a.out, "locale %s, version %d, available [%s]\n",
		l.Locale(), l.Version(), strings.Join(l.AvailableLocales(), ", "))

	<-ctx.Done()
	a.logger.Info().Msg("client stopped")

	return nil
}

func (a *App) printKeys() error {
	for _, key := range a.keys {
		if _, err := fmt.Fprintf(a.out, "%s=%s\n", key, a.services.Localizer.T(key, nil)); err != nil {
			return err
		}
	}
	return nil
}
