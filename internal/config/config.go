package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/vitereact-labs/create-vite-react/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyTemplate   = "template"    // template variant used without asking (js, ts)
	KeyExclude    = "exclude"     // patterns skipped when copying templates
	KeyDefaultDir = "default_dir" // project directory offered by the name prompt
)

// DefaultExclude keeps dependency folders, repository metadata and Finder
// litter out of generated projects when a template directory on disk is
// used.
var DefaultExclude = []string{
	`(^|/)node_modules(/|$)`,
	`(^|/)\.git(/|$)`,
	`(^|/)\.DS_Store$`,
}

var v = viper.New()

// Dir returns the path to the config directory. The HOME variable with the
// branding prefix (CREATE_VITE_REACT_HOME) overrides ~/.create-vite-react.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes settings from defaults, the config file and environment.
// A missing config file is not an error; a malformed one is.
func Load() error {
	v = viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyTemplate, "")
	v.SetDefault(KeyExclude, DefaultExclude)
	v.SetDefault(KeyDefaultDir, branding.DefaultTargetDir())

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// GetStringSlice returns a list value. A single string read from the
// environment is split on commas.
func GetStringSlice(key string) []string {
	if raw, ok := v.Get(key).(string); ok {
		if raw == "" {
			return nil
		}
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return v.GetStringSlice(key)
}

// Set writes a config key-value pair and saves the config file. Values for
// list keys are split on commas.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyExclude {
		v.Set(key, splitList(value))
	} else {
		v.Set(key, value)
	}

	configFile := FilePath()
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func splitList(value string) []string {
	var out []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
