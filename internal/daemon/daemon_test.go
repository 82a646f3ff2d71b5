package daemon_test

import (
	"context"
	"testing"

	"filevora/internal/daemon"
	"filevora/internal/logging"
	"filevora/internal/testsupport"
)

func TestDaemonLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	d, err := daemon.New(cfg, store, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}

	status := d.Status()
	if status.Running {
		t.Fatal("daemon should not report running before Start")
	}
	if status.ToolCount == 0 {
		t.Fatal("registry should be loaded")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !d.Status().Running {
		t.Fatal("daemon should report running")
	}
	if d.Addr() == "" {
		t.Fatal("api server address should be populated")
	}

	if err := d.Start(ctx); err == nil {
		t.Fatal("second Start should fail")
	}

	d.Stop()
	if d.Status().Running {
		t.Fatal("daemon should stop")
	}
}

func TestDaemonLockExcludesSecondInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	first, err := daemon.New(cfg, store, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer first.Stop()

	secondStore := testsupport.MustOpenStore(t, cfg)
	second, err := daemon.New(cfg, secondStore, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New second: %v", err)
	}
	if err := second.Start(ctx); err == nil {
		second.Stop()
		t.Fatal("second instance should fail to acquire the lock")
	}
}
