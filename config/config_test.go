package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "4000", "EMPTY": ""}

	assert.Equal(t, "4000", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "fallback", GetString(cfg, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"TIMEOUT": "30", "BAD": "abc"}

	assert.Equal(t, 30, GetInt(cfg, "TIMEOUT", 60))
	assert.Equal(t, 60, GetInt(cfg, "MISSING", 60))
	assert.Equal(t, 60, GetInt(cfg, "BAD", 60))
	assert.Equal(t, 60, GetInt(nil, "TIMEOUT", 60))
}

func TestHas(t *testing.T) {
	cfg := map[string]string{"SET": "value", "EMPTY": ""}

	assert.True(t, Has(cfg, "SET"))
	assert.False(t, Has(cfg, "EMPTY"))
	assert.False(t, Has(cfg, "MISSING"))
}

func TestNewSplitsEntries(t *testing.T) {
	key, value := split("KEY=some=value")
	assert.Equal(t, "KEY", key)
	assert.Equal(t, "some=value", value)

	key, value = split("NOVALUE")
	assert.Equal(t, "NOVALUE", key)
	assert.Equal(t, "", value)
}
