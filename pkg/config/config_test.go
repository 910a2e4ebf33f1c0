package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DEVLOG_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("DEVLOG_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("DEVLOG_TEST_MISSING", "fallback"))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MASTER_EMAIL", "owner@example.com")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "owner@example.com", cfg.MasterEmail)
}
