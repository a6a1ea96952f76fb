// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GoModule         string `yaml:"go_module"`
	DefaultTargetDir string `yaml:"default_target_dir"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "create-vite-react",
			DisplayName:      "Create Vite React",
			Description:      "Scaffold a new Vite + React project",
			HomeDir:          ".create-vite-react",
			EnvPrefix:        "CREATE_VITE_REACT",
			GoModule:         "github.com/vitereact-labs/create-vite-react",
			DefaultTargetDir: "vite-react-app",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-vite-react").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create-vite-react").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_VITE_REACT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path reported by "version --json".
func GoModule() string { load(); return defaults.GoModule }

// DefaultTargetDir returns the project directory offered when the user
// gives no positional argument.
func DefaultTargetDir() string { load(); return defaults.DefaultTargetDir }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("TEMPLATE") → "CREATE_VITE_REACT_TEMPLATE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
