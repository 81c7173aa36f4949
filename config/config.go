// Package config loads settings for the rbtree command from defaults, an optional YAML
// file, RBTREE_ environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidTrials    = errors.New("soak trials must be positive")
	ErrInvalidKeys      = errors.New("soak keys must be positive")
	ErrInvalidKeySpace  = errors.New("soak key space must be at least the number of keys")
	ErrInvalidWorkers   = errors.New("soak workers must be positive")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("log format must be text or json")
)

// Config holds all configuration for the rbtree command.
type Config struct {
	Soak    SoakConfig    `mapstructure:"soak"`
	Logging LoggingConfig `mapstructure:"logging"`
	Render  RenderConfig  `mapstructure:"render"`
}

// SoakConfig drives the randomized soak run. A zero Seed asks for a time-based seed.
type SoakConfig struct {
	Trials   int    `mapstructure:"trials"`
	Keys     int    `mapstructure:"keys"`
	KeySpace int    `mapstructure:"key_space"`
	Seed     uint64 `mapstructure:"seed"`
	Workers  int    `mapstructure:"workers"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RenderConfig controls tree rendering.
type RenderConfig struct {
	Color bool `mapstructure:"color"`
}

// flagKeys maps command-line flag names to configuration keys. Flags missing from the
// set passed to Load are skipped.
var flagKeys = map[string]string{ //nolint:gochecknoglobals
	"trials":    "soak.trials",
	"keys":      "soak.keys",
	"key-space": "soak.key_space",
	"seed":      "soak.seed",
	"workers":   "soak.workers",
	"log-level": "logging.level",
	"log-json":  "logging.format",
}

// Load reads configuration. An empty configPath looks for rbtree.yaml in the working
// directory and ignores its absence; an explicit path must exist. Flags that were set on
// the command line override every other source.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("rbtree")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix("RBTREE")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	applyFlags(viperCfg, flags)

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("soak.trials", DefaultSoakTrials)
	viperCfg.SetDefault("soak.keys", DefaultSoakKeys)
	viperCfg.SetDefault("soak.key_space", DefaultSoakKeySpace)
	viperCfg.SetDefault("soak.seed", DefaultSoakSeed)
	viperCfg.SetDefault("soak.workers", DefaultSoakWorkers)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	viperCfg.SetDefault("render.color", DefaultRenderColor)
}

// applyFlags copies flags that were changed on the command line into viperCfg.
// --log-json selects the json format, --verbose the debug level and --no-color turns
// rendering colors off.
func applyFlags(viperCfg *viper.Viper, flags *pflag.FlagSet) {
	if flags == nil {
		return
	}

	flags.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}

		if f.Name == "log-json" {
			if f.Value.String() == "true" {
				viperCfg.Set(key, "json")
			}

			return
		}

		viperCfg.Set(key, f.Value.String())
	})

	if changedTrue(flags, "no-color") {
		viperCfg.Set("render.color", false)
	}

	if changedTrue(flags, "verbose") {
		viperCfg.Set("logging.level", "debug")
	}
}

func changedTrue(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)

	return f != nil && f.Changed && f.Value.String() == "true"
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Soak.Trials <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTrials, c.Soak.Trials)
	}

	if c.Soak.Keys <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidKeys, c.Soak.Keys)
	}

	if c.Soak.KeySpace < c.Soak.Keys {
		return fmt.Errorf("%w: %d < %d", ErrInvalidKeySpace, c.Soak.KeySpace, c.Soak.Keys)
	}

	if c.Soak.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Soak.Workers)
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// LoggerOptions converts the logging section into logger options.
func (c *Config) LoggerOptions(subsystem string) logger.Options {
	level, _ := logger.ParseLevel(c.Logging.Level)

	return logger.Options{
		Subsystem: subsystem,
		JSON:      c.Logging.Format == "json",
		MinLevel:  level,
	}
}
