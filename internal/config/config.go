// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the merge target for every configuration source.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the API gateway connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Name is shown in the TUI header and the about overlay.
	// Env: APP_NAME
	Name string `env:"NAME"`
}

// Adapter holds the API gateway connection settings.
type Adapter struct {
	// HTTPAddress is the gateway base URL, e.g. "http://localhost:8080".
	// A bare "host:port" is accepted and gets the http scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound gateway call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the credential database settings.
	DB DB `envPrefix:"DB_"`

	// DownloadDir is where downloaded certificates are written.
	// Env: STORAGE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// DB holds the SQLite settings of the credential store.
type DB struct {
	// DSN is the SQLite file path. ":memory:" keeps the credential for the
	// lifetime of the process only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Defaults used when no source sets a value.
const (
	DefaultAppName        = "Event Portal"
	DefaultHTTPAddress    = "http://localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "event-portal.db"
	DefaultDownloadDir    = "."
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Name: DefaultAppName},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB:          DB{DSN: DefaultDSN},
			DownloadDir: DefaultDownloadDir,
		},
	}
}

// ClientApp holds client application settings.
type ClientApp struct {
	Name string
}

// ClientAdapter holds network settings used by the gateway client.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage holds local storage settings.
type ClientStorage struct {
	DSN         string
	DownloadDir string
}

// ClientConfig is the validated configuration view consumed by the client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetStructuredConfig loads and merges every configuration source using the
// process arguments for flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}

// GetClientConfig builds and validates the client configuration view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{Name: cfg.App.Name},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:         cfg.Storage.DB.DSN,
			DownloadDir: cfg.Storage.DownloadDir,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
