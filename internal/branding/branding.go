// Package branding holds the CLI identity values baked into the binary.
//
// The values live in branding.yaml next to this file and are embedded at
// build time, so a rename only touches that file.
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
	defaults identity
)

type identity struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	ScriptOS    string `yaml:"script_os"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is empty or malformed.
		defaults = identity{
			CLIName:     "pyskel",
			DisplayName: "PySkel",
			Description: "Generate a ready-to-run Python project skeleton",
			HomeDir:     ".pyskel",
			EnvPrefix:   "PYSKEL",
			GoModule:    "github.com/pyskel-labs/pyskel",
			ScriptOS:    "windows",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "pyskel").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".pyskel").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PYSKEL").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// ScriptOS returns the operating system helper scripts are generated for
// unless the user configures another one.
func ScriptOS() string { load(); return defaults.ScriptOS }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "PYSKEL_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
