package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.Nil(t, err)
	assert.Equal(t, "Exporter.exe", cfg.Exporter)
	assert.Equal(t, ".cdb", cfg.InputExt)
	assert.Equal(t, ".xml", cfg.XMLExt)
	assert.Equal(t, ".csv", cfg.OutputExt)
	assert.Equal(t, "DYN_cyclist", cfg.CyclistTable)
	assert.Equal(t, "DYN_team", cfg.TeamTable)
	assert.Equal(t, ',', cfg.CommaRune())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PCM_EXPORTER", "wine-exporter")
	t.Setenv("PCM_COMMA", ";")
	cfg, err := Load()
	require.Nil(t, err)
	assert.Equal(t, "wine-exporter", cfg.Exporter)
	assert.Equal(t, ';', cfg.CommaRune())
}
