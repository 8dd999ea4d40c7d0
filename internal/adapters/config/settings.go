// Package config provides tool settings and the dependency registry loader.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

const (
	configName = "config"
	configType = "yaml"
	configDir  = "glue-deps"
	envPrefix  = "GLUE_DEPS"
)

// Settings holds the tool configuration, read from
// $XDG_CONFIG_HOME/glue-deps/config.yaml with GLUE_DEPS_* overrides.
type Settings struct {
	// Interpreter is the Python interpreter to probe and install into.
	// Empty means autodetect (python3, then python, on PATH).
	Interpreter string `mapstructure:"interpreter"`

	// Installer selects the package manager: "pip" (default) or "conda".
	Installer string `mapstructure:"installer"`

	// CacheDir holds the probe cache and the install journal.
	CacheDir string `mapstructure:"cache_dir"`

	// Registry optionally points at a registry YAML overriding the
	// embedded default.
	Registry string `mapstructure:"registry"`
}

// LoadSettings reads the configuration file and environment. A missing
// configuration file is not an error; defaults apply.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, configDir))
	}

	// Defaults also register the keys so environment-only overrides
	// survive Unmarshal.
	v.SetDefault("interpreter", "")
	v.SetDefault("installer", "pip")
	v.SetDefault("cache_dir", defaultCacheDir())
	v.SetDefault("registry", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, zerr.Wrap(err, "failed to read configuration file")
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, zerr.Wrap(err, "failed to decode configuration")
	}
	return s, nil
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), configDir)
	}
	return filepath.Join(dir, configDir)
}
