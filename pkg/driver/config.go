package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnv names the environment variable consulted for a config path.
	ConfigEnv = "TREE_WALK_CONFIG"
	// DefaultConfigName is looked up in the working directory.
	DefaultConfigName = "tree-walk.yml"

	defaultPrompt       = "> "
	defaultCacheSize    = 64
	defaultHistoryLimit = 100
)

// Config holds driver settings loaded from tree-walk.yml.
type Config struct {
	Path      string
	Prompt    string
	Color     ColorMode
	CacheSize int
	History   HistoryConfig
}

// HistoryConfig controls the persistent REPL history store.
type HistoryConfig struct {
	Enabled bool
	Path    string
	Limit   int
}

// ColorMode selects when diagnostics are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether the mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// UnmarshalYAML accepts a boolean or one of auto/always/never.
func (m *ColorMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a boolean or one of auto, always, never")
	}
	var flag bool
	if value.ShortTag() == "!!bool" {
		if err := value.Decode(&flag); err != nil {
			return err
		}
		if flag {
			*m = ColorAuto
		} else {
			*m = ColorNever
		}
		return nil
	}
	*m = ColorMode(strings.ToLower(strings.TrimSpace(value.Value)))
	return nil
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Prompt:    defaultPrompt,
		Color:     ColorAuto,
		CacheSize: defaultCacheSize,
		History: HistoryConfig{
			Limit: defaultHistoryLimit,
		},
	}
}

// ResolveConfig loads the config named by explicit, then $TREE_WALK_CONFIG,
// then ./tree-walk.yml. Defaults are returned when none of them is set.
func ResolveConfig(explicit string) (*Config, error) {
	if explicit != "" {
		return LoadConfig(explicit)
	}
	if fromEnv := os.Getenv(ConfigEnv); fromEnv != "" {
		return LoadConfig(fromEnv)
	}
	if _, err := os.Stat(DefaultConfigName); err == nil {
		return LoadConfig(DefaultConfigName)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: stat %s: %w", DefaultConfigName, err)
	}
	return DefaultConfig(), nil
}

// LoadConfig parses a YAML config file from disk and validates it.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			cfg := DefaultConfig()
			cfg.Path = absPath
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg, err := raw.toConfig(absPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs ValidationError
	if !c.Color.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("color has unsupported value %q", c.Color))
	}
	if c.CacheSize < 0 {
		errs.Issues = append(errs.Issues, "cache_size must not be negative")
	}
	if c.History.Limit <= 0 {
		errs.Issues = append(errs.Issues, "history.limit must be positive")
	}
	if c.History.Enabled && c.History.Path == "" {
		errs.Issues = append(errs.Issues, "history.path is required when history is enabled")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

type configFile struct {
	Prompt    *string            `yaml:"prompt"`
	Color     *ColorMode         `yaml:"color"`
	CacheSize *int               `yaml:"cache_size"`
	History   *historyConfigFile `yaml:"history"`
}

type historyConfigFile struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Limit   *int   `yaml:"limit"`
}

func (f configFile) toConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Path = path
	if f.Prompt != nil {
		cfg.Prompt = *f.Prompt
	}
	if f.Color != nil {
		cfg.Color = *f.Color
	}
	if f.CacheSize != nil {
		cfg.CacheSize = *f.CacheSize
	}
	if f.History != nil {
		cfg.History.Enabled = f.History.Enabled
		if f.History.Limit != nil {
			cfg.History.Limit = *f.History.Limit
		}
		if f.History.Path != "" {
			expanded, err := expandHome(f.History.Path)
			if err != nil {
				return nil, err
			}
			if !filepath.IsAbs(expanded) {
				expanded = filepath.Join(filepath.Dir(path), expanded)
			}
			cfg.History.Path = expanded
		}
	}
	return cfg, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
