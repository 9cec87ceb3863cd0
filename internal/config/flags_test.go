package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "http://127.0.0.1:9090",
		"-request-timeout", "5s",
		"-d", "creds.db",
		"-download-dir", "/tmp/certs",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "creds.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/certs", cfg.Storage.DownloadDir)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-grpc-address", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
