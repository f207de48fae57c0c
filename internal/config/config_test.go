// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func useDirs(t *testing.T) (string, string) {
	t.Helper()
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() {
		if chdirErr := os.Chdir(cwd); chdirErr != nil {
			t.Fatalf("restore cwd: %v", chdirErr)
		}
	})
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return home, work
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	cfgDir := filepath.Join(dir, ".inspectctl")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	useDirs(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Address != defaultAddress {
		t.Fatalf("address = %q, want %q", cfg.Address, defaultAddress)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("log_level = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.QueueDepth != defaultQueueDepth {
		t.Fatalf("queue_depth = %d, want %d", cfg.QueueDepth, defaultQueueDepth)
	}
	if cfg.WaitTimeout != defaultWaitTimeout {
		t.Fatalf("wait_timeout = %s, want %s", cfg.WaitTimeout, defaultWaitTimeout)
	}
	if cfg.TLS {
		t.Fatal("tls enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadOverlaysHomeThenLocal(t *testing.T) {
	home, work := useDirs(t)

	writeConfig(t, home, `
address = "robot-gw:9443"
log_level = "DEBUG"
wait_timeout = "90s"
`)
	writeConfig(t, work, `
address = "bench-gw:9443"
queue_depth = 128
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Address != "bench-gw:9443" {
		t.Fatalf("address = %q, want the local override", cfg.Address)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level = %q, want debug", cfg.LogLevel)
	}
	if cfg.QueueDepth != 128 {
		t.Fatalf("queue_depth = %d, want 128", cfg.QueueDepth)
	}
	if cfg.WaitTimeout != 90*time.Second {
		t.Fatalf("wait_timeout = %s, want 90s", cfg.WaitTimeout)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	home, _ := useDirs(t)

	writeConfig(t, home, "queue_depth = 0\n")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "queue_depth") {
		t.Fatalf("expected queue_depth error, got %v", err)
	}

	writeConfig(t, home, "wait_timeout = \"soon\"\n")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "wait_timeout") {
		t.Fatalf("expected wait_timeout error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.CertFile = "client.pem"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected cert/key pairing error")
	}

	cfg = defaults()
	cfg.CACertFile = "ca.pem"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected tls requirement error")
	}

	cfg = defaults()
	cfg.TLS = true
	cfg.CACertFile = "ca.pem"
	cfg.CertFile = "client.pem"
	cfg.KeyFile = "client.key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid tls config rejected: %v", err)
	}

	cfg = defaults()
	cfg.Address = "  "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected address error")
	}
}
