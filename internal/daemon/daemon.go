package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"log/slog"

	"github.com/gofrs/flock"

	"filevora/internal/agent"
	"filevora/internal/config"
	"filevora/internal/history"
	"filevora/internal/logging"
	"filevora/internal/procapi"
	"filevora/internal/tools"
)

// Daemon coordinates the background services and enforces single-instance
// execution.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *history.Store
	registry *tools.Registry
	client   *procapi.Client
	resolver *agent.Resolver

	lockPath string
	lock     *flock.Flock

	apiServer *apiServer

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	PID          int
	Origin       string
	DBPath       string
	LockFilePath string
	ToolCount    int
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, store *history.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || store == nil || logger == nil {
		return nil, errors.New("daemon requires config, store, and logger")
	}

	registry, err := tools.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("build tool registry: %w", err)
	}

	lockPath := cfg.LockFilePath()
	d := &Daemon{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		registry: registry,
		client:   procapi.NewClient(cfg),
		resolver: agent.NewResolver(registry, agent.Options{
			ScoreThreshold: cfg.Agent.ScoreThreshold,
			MinWordLength:  cfg.Agent.MinWordLength,
		}),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}

	server, err := newAPIServer(cfg, d, logger)
	if err != nil {
		return nil, err
	}
	d.apiServer = server
	return d, nil
}

// Start acquires the daemon lock and brings up the HTTP API.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another filevora daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	if err := d.apiServer.start(d.ctx); err != nil {
		_ = d.lock.Unlock()
		d.cancel()
		d.ctx = nil
		d.cancel = nil
		return err
	}

	d.running.Store(true)
	d.logger.Info("filevora daemon started",
		logging.String("lock", d.lockPath),
		logging.String("origin", d.cfg.API.Origin))
	return nil
}

// Stop shuts down the API and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.apiServer.stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("filevora daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Status reports runtime information.
func (d *Daemon) Status() Status {
	return Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		Origin:       d.cfg.API.Origin,
		DBPath:       d.store.Path(),
		LockFilePath: d.lockPath,
		ToolCount:    d.registry.Len(),
	}
}

// Addr returns the listen address once the API server is up. Useful when
// binding to port zero.
func (d *Daemon) Addr() string {
	if d.apiServer == nil {
		return ""
	}
	return d.apiServer.addr()
}

// Registry exposes the tool registry.
func (d *Daemon) Registry() *tools.Registry {
	return d.registry
}
