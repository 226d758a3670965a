package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pyskel-labs/pyskel/internal/branding"
	"github.com/pyskel-labs/pyskel/internal/catalog"
	"github.com/pyskel-labs/pyskel/internal/manifest"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyGitUserName  = "git.user_name"
	KeyGitUserEmail = "git.user_email"
	KeyVenvDir      = "venv_dir"
	KeyScriptsOS    = "scripts_os"
	KeyLayout       = "layout"
)

var defaults = map[string]string{
	KeyGitUserName:  catalog.DefaultGitUserName,
	KeyGitUserEmail: catalog.DefaultGitUserEmail,
	KeyVenvDir:      catalog.DefaultVenvDir,
	KeyScriptsOS:    branding.ScriptOS(),
	KeyLayout:       manifest.LayoutFlat,
}

// Settings is the resolved view of every known key.
type Settings struct {
	GitUserName  string
	GitUserEmail string
	VenvDir      string
	ScriptsOS    string
	Layout       string
}

// Dir returns the config directory: $PYSKEL_HOME if set, else ~/.pyskel.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("home")); v != "" {
		return v
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

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys returns every known key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		GitUserName:  viper.GetString(KeyGitUserName),
		GitUserEmail: viper.GetString(KeyGitUserEmail),
		VenvDir:      viper.GetString(KeyVenvDir),
		ScriptsOS:    viper.GetString(KeyScriptsOS),
		Layout:       viper.GetString(KeyLayout),
	}
}

// Validate checks that key is known and value acceptable for it.
func Validate(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	switch key {
	case KeyLayout:
		if value != manifest.LayoutFlat && value != manifest.LayoutTests {
			return fmt.Errorf("%s must be %q or %q, got %q", key, manifest.LayoutFlat, manifest.LayoutTests, value)
		}
	case KeyVenvDir:
		if value == "" || strings.ContainsAny(value, `/\ `) {
			return fmt.Errorf("%s must be a single directory name, got %q", key, value)
		}
	case KeyGitUserName, KeyGitUserEmail:
		if strings.ContainsAny(value, "\"\r\n") {
			return fmt.Errorf("%s must not contain quotes or line breaks, got %q", key, value)
		}
	}
	return nil
}

// Validate checks resolved settings, which may come from the config file or
// the environment rather than from Set.
func (s Settings) Validate() error {
	values := map[string]string{
		KeyGitUserName:  s.GitUserName,
		KeyGitUserEmail: s.GitUserEmail,
		KeyVenvDir:      s.VenvDir,
		KeyScriptsOS:    s.ScriptsOS,
		KeyLayout:       s.Layout,
	}
	for _, key := range Keys() {
		if err := Validate(key, values[key]); err != nil {
			return fmt.Errorf("invalid setting (check %s or %s): %w", FilePath(), branding.EnvVar(strings.ReplaceAll(key, ".", "_")), err)
		}
	}
	return nil
}

// Set validates and writes a config key-value pair, then saves the file.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
