package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "pip", s.Installer)
	assert.NotEmpty(t, s.CacheDir)
	assert.Empty(t, s.Interpreter)
	assert.Empty(t, s.Registry)
}

func TestLoadSettings_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GLUE_DEPS_INSTALLER", "conda")
	t.Setenv("GLUE_DEPS_INTERPRETER", "/opt/python/bin/python3")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "conda", s.Installer)
	assert.Equal(t, "/opt/python/bin/python3", s.Interpreter)
}
