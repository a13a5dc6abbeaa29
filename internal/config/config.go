// Package config loads feather-cli settings.
//
// Precedence, lowest to highest: built-in defaults, a YAML config file,
// FEATHER_CLI_* environment variables, then command-line flags that were
// explicitly set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/bjaus/feather"
	"github.com/bjaus/feather/internal/errs"
	"github.com/bjaus/feather/internal/logger"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FEATHER_CLI_"

// Defaults.
const (
	DefaultFormat   = "table"
	DefaultBorder   = "ascii"
	DefaultLogLevel = "warn"
)

// configNames are looked up in the working directory when no --config is given.
var configNames = []string{"feather-cli.yaml", "feather-cli.yml"}

// Config is the resolved configuration.
type Config struct {
	Format   string `koanf:"format"`
	Border   string `koanf:"border"`
	MaxWidth int    `koanf:"max_width"`
	LogLevel string `koanf:"log_level"`

	S3Endpoint  string `koanf:"s3_endpoint"`
	S3AccessKey string `koanf:"s3_access_key"`
	S3SecretKey string `koanf:"s3_secret_key"`
	S3Region    string `koanf:"s3_region"`
	S3UseSSL    bool   `koanf:"s3_use_ssl"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// flagKeys maps flag names to config keys. Flags not listed are not config.
var flagKeys = map[string]string{
	"format":    "format",
	"border":    "border",
	"max-width": "max_width",
	"log-level": "log_level",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:   DefaultFormat,
		Border:   DefaultBorder,
		LogLevel: DefaultLogLevel,
		S3UseSSL: true,
	}
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves the configuration. cfgFile may be empty. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]any{
		"format":     def.Format,
		"border":     def.Border,
		"max_width":  def.MaxWidth,
		"log_level":  def.LogLevel,
		"s3_use_ssl": def.S3UseSSL,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, errs.Wrap(errs.ErrKindUsage, "config file "+used+" not found", err)
			}
			return nil, errs.Wrap(errs.ErrKindUsage, "error reading config file "+used, err)
		}
	}

	// FEATHER_CLI_S3_ENDPOINT -> s3_endpoint
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errs.Wrap(errs.ErrKindUsage, "unable to decode config", err)
	}
	cfg.File = used
	return &cfg, cfg.Validate()
}

// Validate checks the values that the flags cannot constrain by type.
func (c *Config) Validate() error {
	if _, err := feather.ParseFormat(c.Format); err != nil {
		return errs.Wrap(errs.ErrKindUsage, "invalid format", err)
	}
	if _, err := feather.ParseBorder(c.Border); err != nil {
		return errs.Wrap(errs.ErrKindUsage, "invalid border", err)
	}
	if c.MaxWidth < 0 {
		return errs.Newf(errs.ErrKindUsage, "max width must be non-negative, got %d", c.MaxWidth)
	}
	if !slices.Contains(logger.Levels(), c.LogLevel) {
		return errs.Newf(errs.ErrKindUsage, "invalid log level %q", c.LogLevel)
	}
	return nil
}

// OutputFormat returns the parsed format.
func (c *Config) OutputFormat() feather.Format {
	f, _ := feather.ParseFormat(c.Format)
	return f
}

// BorderStyle returns the parsed border style.
func (c *Config) BorderStyle() feather.BorderStyle {
	b, _ := feather.ParseBorder(c.Border)
	return b
}
