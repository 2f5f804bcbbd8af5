// Package config loads datagrid configuration from ~/.datagrid/config.yaml,
// an optional project-local overlay, and DATAGRID_* environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/datagrid/internal/logging"
)

// Environment variables that override file configuration.
const (
	EnvHome       = "DATAGRID_HOME"
	EnvLogLevel   = "DATAGRID_LOG_LEVEL"
	EnvLogFormat  = "DATAGRID_LOG_FORMAT"
	EnvPageSize   = "DATAGRID_PAGE_SIZE"
	EnvLocale     = "DATAGRID_LOCALE"
	EnvProjectDir = "DATAGRID_PROJECT_DIR"
)

// Table sizes. They select row density in rendered output.
const (
	SizeSmall  = "small"
	SizeMiddle = "middle"
	SizeLarge  = "large"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatYAML   = "yaml"
	FormatHTML   = "html"
)

const (
	defaultPageSize     = 10
	defaultSiblings     = 1
	defaultBoundaries   = 1
	defaultEmptyMessage = "No data"
	defaultRowKey       = "id"
	maxPageSize         = 1000
)

// Validation errors.
var (
	ErrInvalidPageSize = errors.New("table.page_size must be between 1 and 1000")
	ErrInvalidSize     = errors.New("table.size must be one of small, middle, large")
	ErrInvalidFormat   = errors.New("output.default_format must be one of table, json, ndjson, yaml, html")
	ErrInvalidLevel    = errors.New("logging.level must be one of trace, debug, info, warn, error")
	ErrInvalidRange    = errors.New("table.siblings and table.boundaries cannot be negative")
)

// Config is the complete datagrid configuration.
type Config struct {
	Table   TableConfig   `yaml:"table"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// TableConfig holds grid presentation and paging defaults.
type TableConfig struct {
	PageSize     int    `yaml:"page_size"`
	Siblings     int    `yaml:"siblings"`
	Boundaries   int    `yaml:"boundaries"`
	Size         string `yaml:"size"`
	Bordered     bool   `yaml:"bordered"`
	Locale       string `yaml:"locale"`
	EmptyMessage string `yaml:"empty_message"`
	RowKey       string `yaml:"row_key"`
}

// OutputConfig holds rendering defaults.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration without reading files or environment.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			PageSize:     defaultPageSize,
			Siblings:     defaultSiblings,
			Boundaries:   defaultBoundaries,
			Size:         SizeMiddle,
			Bordered:     true,
			Locale:       "",
			EmptyMessage: defaultEmptyMessage,
			RowKey:       defaultRowKey,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New returns the default configuration overlaid with the global config file, when
// present, and DATAGRID_* environment variables. A malformed file is ignored and
// defaults are kept.
func New() *Config {
	return NewContext(context.Background())
}

// NewContext is New with a warning logged through ctx's logger when the global file
// cannot be merged.
func NewContext(ctx context.Context) *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		path := filepath.Join(dir, "config.yaml")
		if _, statErr := os.Stat(path); statErr == nil {
			merged := Default()
			if mergeErr := ShallowMergeYAML(merged, path); mergeErr != nil {
				logging.FromContext(ctx).Warn().
					Ctx(ctx).
					Str("component", "config").
					Str("operation", "load_global_config").
					Err(mergeErr).
					Str("config_path", path).
					Msg("failed to merge global config, using defaults")
			} else {
				cfg = merged
			}
		}
		cfg.configPath = path
	}

	cfg.ApplyEnv()
	return cfg
}

// Load returns the default configuration overlaid with the file at path and the
// environment. Unlike New, a missing or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv applies DATAGRID_* environment overrides. Unparseable numeric values
// are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		c.Table.Locale = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Table.PageSize = n
		}
	}
}

// Validate checks the configuration for semantic errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Table.PageSize < 1 || c.Table.PageSize > maxPageSize {
		errs = append(errs, ErrInvalidPageSize)
	}
	if c.Table.Siblings < 0 || c.Table.Boundaries < 0 {
		errs = append(errs, ErrInvalidRange)
	}
	switch c.Table.Size {
	case SizeSmall, SizeMiddle, SizeLarge:
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidSize, c.Table.Size))
	}
	if !IsValidFormat(c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.DefaultFormat))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidLevel, c.Logging.Level))
	}

	return errors.Join(errs...)
}

// IsValidFormat reports whether format names a supported output format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatNDJSON, FormatYAML, FormatHTML:
		return true
	default:
		return false
	}
}

// ConfigPath returns the file Save writes to.
//
//nolint:revive // ConfigPath reads better than Path at call sites.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML to ConfigPath, creating its directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no config path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}
