// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads inspectctl runtime settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultAddress      = "localhost:9443"
	defaultLogLevel     = "info"
	defaultQueueDepth   = 64
	defaultWaitTimeout  = 5 * time.Minute
	defaultOTLPEndpoint = ""
)

// Config stores runtime settings for inspectctl. Values come from
// built-in defaults overlaid by ~/.inspectctl/config.toml and a
// project-local .inspectctl/config.toml, in that order.
type Config struct {
	Address     string
	LogLevel    string
	QueueDepth  int
	WaitTimeout time.Duration

	TLS        bool
	CACertFile string
	CertFile   string
	KeyFile    string

	OTLPEndpoint string
}

type fileConfig struct {
	Address     *string `toml:"address"`
	LogLevel    *string `toml:"log_level"`
	QueueDepth  *int    `toml:"queue_depth"`
	WaitTimeout *string `toml:"wait_timeout"`

	TLS        *bool   `toml:"tls"`
	CACertFile *string `toml:"ca_cert_file"`
	CertFile   *string `toml:"cert_file"`
	KeyFile    *string `toml:"key_file"`

	OTLPEndpoint *string `toml:"otlp_endpoint"`
}

// Load reads config from ~/.inspectctl/config.toml and overlays a
// project-local .inspectctl/config.toml.
func Load() (*Config, error) {
	cfg := defaults()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	paths := []string{
		filepath.Join(homeDir, ".inspectctl", "config.toml"),
		filepath.Join(workingDir, ".inspectctl", "config.toml"),
	}

	for _, path := range paths {
		if err := overlayFromFile(&cfg, path); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func defaults() Config {
	return Config{
		Address:      defaultAddress,
		LogLevel:     defaultLogLevel,
		QueueDepth:   defaultQueueDepth,
		WaitTimeout:  defaultWaitTimeout,
		OTLPEndpoint: defaultOTLPEndpoint,
	}
}

func overlayFromFile(cfg *Config, path string) error {
	if cfg == nil {
		return errors.New("config must not be nil")
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat config file %q: %w", path, err)
	}

	var decoded fileConfig
	if _, err := toml.DecodeFile(path, &decoded); err != nil {
		return fmt.Errorf("decode config file %q: %w", path, err)
	}

	if decoded.Address != nil {
		cfg.Address = strings.TrimSpace(*decoded.Address)
	}
	if decoded.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*decoded.LogLevel))
	}
	if decoded.QueueDepth != nil {
		if *decoded.QueueDepth <= 0 {
			return fmt.Errorf("parse queue_depth in %q: must be > 0", path)
		}
		cfg.QueueDepth = *decoded.QueueDepth
	}
	if decoded.WaitTimeout != nil {
		value, err := time.ParseDuration(*decoded.WaitTimeout)
		if err != nil {
			return fmt.Errorf("parse wait_timeout in %q: %w", path, err)
		}
		cfg.WaitTimeout = value
	}
	if decoded.TLS != nil {
		cfg.TLS = *decoded.TLS
	}
	if decoded.CACertFile != nil {
		cfg.CACertFile = strings.TrimSpace(*decoded.CACertFile)
	}
	if decoded.CertFile != nil {
		cfg.CertFile = strings.TrimSpace(*decoded.CertFile)
	}
	if decoded.KeyFile != nil {
		cfg.KeyFile = strings.TrimSpace(*decoded.KeyFile)
	}
	if decoded.OTLPEndpoint != nil {
		cfg.OTLPEndpoint = strings.TrimSpace(*decoded.OTLPEndpoint)
	}

	return nil
}

// Validate rejects inconsistent settings before anything connects.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config must not be nil")
	}
	if strings.TrimSpace(c.Address) == "" {
		return errors.New("address must not be empty")
	}
	if c.QueueDepth <= 0 {
		return errors.New("queue_depth must be > 0")
	}
	if c.WaitTimeout <= 0 {
		return errors.New("wait_timeout must be > 0")
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return errors.New("cert_file and key_file must be set together")
	}
	if !c.TLS && (c.CACertFile != "" || c.CertFile != "") {
		return errors.New("certificate files require tls = true")
	}
	return nil
}
