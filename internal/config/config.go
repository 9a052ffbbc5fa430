// Package config loads the initializer settings using koanf.
// Settings describe the template layout (where the package directory
// and manifest live) and the prompt fallbacks. Everything has a
// default matching the stock template, so overrides are only needed
// for customized layouts. Priority: environment variables
// (TEMPLATE_INIT_*) > optional .template-init.yml > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the optional settings file read from the template root.
const FileName = ".template-init.yml"

// envPrefix namespaces the environment overrides.
const envPrefix = "TEMPLATE_INIT_"

// Settings describes the template layout and the prompt fallbacks.
type Settings struct {
	// SourceDir is the directory holding the template package.
	SourceDir string `koanf:"source_dir"`
	// TemplatePackage is the placeholder package directory to rename.
	TemplatePackage string `koanf:"template_package"`
	// ManifestPath is the project manifest rewritten during setup.
	ManifestPath string `koanf:"manifest_path"`
	// MarkerName is the package marker file overwritten during setup.
	MarkerName string `koanf:"marker_name"`
	// InitialVersion is the version written into the marker file.
	InitialVersion string `koanf:"initial_version"`
	// DefaultAuthor is the author fallback when the prompt is left blank.
	DefaultAuthor string `koanf:"default_author"`
	// DefaultEmail is the email fallback when the prompt is left blank.
	DefaultEmail string `koanf:"default_email"`
}

// Defaults returns the settings for the stock template layout.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"source_dir":       "src",
		"template_package": "template_package",
		"manifest_path":    "pyproject.toml",
		"marker_name":      "__init__.py",
		"initial_version":  "0.1.0",
		"default_author":   "Your Name",
		"default_email":    "your.email@example.com",
	}
}

// Fallback returns the default settings without touching the
// filesystem or environment. Used when loading fails: the settings
// file is optional and must never block a run.
func Fallback() *Settings {
	s := &Settings{}
	applyDefaults(s)
	return s
}

// Load reads settings from the default file location.
func Load() (*Settings, error) {
	return LoadFrom(FileName)
}

// LoadFrom reads settings with priority: environment > file at path >
// defaults. A missing file is not an error.
func LoadFrom(path string) (*Settings, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if fileExists(path) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading settings file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment settings: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unmarshalling settings: %w", err)
	}
	return &s, nil
}

// PackagePath returns the path of a package directory under SourceDir.
func (s *Settings) PackagePath(name string) string {
	return filepath.Join(s.SourceDir, name)
}

// MarkerPath returns the marker file path for a package.
func (s *Settings) MarkerPath(packageName string) string {
	return filepath.Join(s.SourceDir, packageName, s.MarkerName)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range Defaults() {
		k.Set(key, value)
	}
}

// applyDefaults fills a Settings struct from the defaults map.
func applyDefaults(s *Settings) {
	defaults := Defaults()
	s.SourceDir = defaults["source_dir"].(string)
	s.TemplatePackage = defaults["template_package"].(string)
	s.ManifestPath = defaults["manifest_path"].(string)
	s.MarkerName = defaults["marker_name"].(string)
	s.InitialVersion = defaults["initial_version"].(string)
	s.DefaultAuthor = defaults["default_author"].(string)
	s.DefaultEmail = defaults["default_email"].(string)
}

// envTransform converts environment variable names to config keys.
// Example: TEMPLATE_INIT_SOURCE_DIR -> source_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
