package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/MKhiriev/go-locale-sync/internal/adapter"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
)

type syncJob struct {
	engine      SyncEngine
	remote      adapter.RemoteSource
	versionPath string
	interval    time.Duration

	logger *logger.Logger

	mu          sync.Mutex
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
}

// NewSyncJob creates a job that calls engine.Reconcile(ctx, false) whenever
// the value at versionPath changes and every interval. A zero or negative
// interval disables the timer. The job is idle until Start is called.
func NewSyncJob(engine SyncEngine, remote adapter.RemoteSource, versionPath string, interval time.Duration, logger *logger.Logger) SyncJob {
	return &syncJob{
		engine:      engine,
		remote:      remote,
		versionPath: versionPath,
		interval:    interval,
		logger:      logger,
	}
}

// Start implements SyncJob. Triggers from the subscription and the timer are
// funnelled into a single-slot channel drained by one worker, so a burst of
// events while a reconcile is running results in exactly one more run.
// A failed subscription is logged and the job keeps polling.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	defer j.mu.Unlock()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	trigger := make(chan struct{}, 1)
	notify := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	if j.remote != nil {
		unsubscribe, err := j.remote.Subscribe(jobCtx, j.versionPath, func(json.RawMessage) { notify() })
		if err != nil {
			j.logger.Err(err).Str("func", "syncJob.Start").Str("path", j.versionPath).Msg("subscription failed, relying on timer")
		} else {
			j.unsubscribe = unsubscribe
		}
	}

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-trigger:
				// an in-flight reconcile is allowed to finish on Stop
				_, _ = j.engine.Reconcile(context.WithoutCancel(jobCtx), false)
			}
		}
	}()

	if j.interval > 0 {
		j.wg.Add(1)
		go func() {
			defer j.wg.Done()
			t := time.NewTicker(j.interval)
			defer t.Stop()

			for {
				select {
				case <-jobCtx.Done():
					return
				case <-t.C:
					notify()
				}
			}
		}()
	}

	j.logger.Info().
		Str("path", j.versionPath).
		Dur("poll_interval", j.interval).
		Bool("subscribed", j.unsubscribe != nil).
		Msg("sync job started")
}

// Stop implements SyncJob. The timer, the worker and the subscription are
// disposed together under the job lock. Safe to call when the job is not
// running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancel == nil {
		return
	}

	j.cancel()
	j.cancel = nil

	if j.unsubscribe != nil {
		j.unsubscribe()
		j.unsubscribe = nil
	}

	j.wg.Wait()
	j.logger.Info().Msg("sync job stopped")
}
