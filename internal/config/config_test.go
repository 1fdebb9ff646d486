package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
gateway:
  url: "https://example.test/exec"
storage:
  driver: "memory"
sessions:
  - key: "pier"
    date: "20250428"
    capacity: 40
    training_enabled: true
    training_quota: 8
    hand_required: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "https://example.test/exec", cfg.Gateway.URL)
	assert.Equal(t, 10*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "localhost:8080", cfg.HTTPServer.Address)

	require.Len(t, cfg.Sessions, 1)
	assert.Equal(t, Session{
		Key:             "pier",
		Date:            "20250428",
		Capacity:        40,
		TrainingEnabled: true,
		TrainingQuota:   8,
		HandRequired:    true,
	}, cfg.Sessions[0])
}

func TestLoadWithoutSessions(t *testing.T) {
	path := writeConfig(t, `
gateway:
  url: "https://example.test/exec"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
