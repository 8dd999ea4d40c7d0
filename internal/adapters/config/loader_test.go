package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glue-viz/gluedeps/internal/core/domain"
)

func TestLoad_EmbeddedDefault(t *testing.T) {
	registry, err := NewRegistryLoader("").Load()
	require.NoError(t, err)

	required, ok := registry.Category(domain.NewName("required"))
	require.True(t, ok)
	assert.True(t, required.Required)
	assert.Equal(t, domain.PolicyAll, required.Policy)

	gui, ok := registry.Category(domain.NewName("gui"))
	require.True(t, ok)
	assert.True(t, gui.Required)
	assert.Equal(t, domain.PolicyAny, gui.Policy)

	// scikit-image installs under a different import name.
	skimage, ok := registry.Dependency(domain.NewName("scikit-image"))
	require.True(t, ok)
	assert.Equal(t, "skimage", skimage.Module.String())
	assert.Equal(t, "scikit-image", skimage.Package.String())
}

func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: 1
categories:
  - name: core
    required: true
    dependencies:
      - name: numpy
`), 0o600))

	registry, err := NewRegistryLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())
}

func TestLoad_MissingOverrideFile(t *testing.T) {
	_, err := NewRegistryLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestParse_Defaults(t *testing.T) {
	registry, err := Parse([]byte(`
categories:
  - name: core
    dependencies:
      - name: numpy
`))
	require.NoError(t, err)

	dep, ok := registry.Dependency(domain.NewName("numpy"))
	require.True(t, ok)
	assert.Equal(t, "numpy", dep.Module.String())
	assert.Equal(t, "numpy", dep.PipName())
	assert.Equal(t, "numpy", dep.CondaName())
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"not yaml", "\t:::"},
		{"no categories", "version: 1"},
		{"category without name", "categories:\n  - required: true"},
		{"dependency without name", "categories:\n  - name: core\n    dependencies:\n      - module: numpy"},
		{"unknown policy", "categories:\n  - name: core\n    policy: most"},
		{"duplicate dependency", "categories:\n  - name: a\n    dependencies:\n      - name: numpy\n  - name: b\n    dependencies:\n      - name: numpy"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

// Every parse failure must be matchable against the sentinel, including
// yaml decode errors.
func TestParse_ErrorsMatchRegistryInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown policy":        "categories:\n  - name: core\n    policy: most",
		"not yaml":              "\t:::",
		"no categories":         "version: 1",
		"category without name": "categories:\n  - required: true",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			assert.True(t, errors.Is(err, domain.ErrRegistryInvalid))
		})
	}
}
