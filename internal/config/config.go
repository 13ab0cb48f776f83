// Package config loads meterctl settings from flags, environment
// variables and an optional YAML file.
//
// Precedence, highest first: command-line flags, METER_* environment
// variables (METER_FONT_FAMILY, METER_LOGGING_LEVEL, ...), the config
// file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables.
const EnvPrefix = "METER"

// Config holds all meterctl settings.
type Config struct {
	Width  int     `mapstructure:"width"  yaml:"width"`
	Height int     `mapstructure:"height" yaml:"height"`
	Max    float64 `mapstructure:"max"    yaml:"max"`
	From   float64 `mapstructure:"from"   yaml:"from"`  // previous value, where the sweep starts
	Value  float64 `mapstructure:"value"  yaml:"value"` // value the sweep ends at
	Label  string  `mapstructure:"label"  yaml:"label"`

	Theme      string `mapstructure:"theme"       yaml:"theme"` // "light", "dark" or a YAML theme file
	FontFamily string `mapstructure:"font_family" yaml:"font_family"`
	FontWeight string `mapstructure:"font_weight" yaml:"font_weight"`
	FontFile   string `mapstructure:"font_file"   yaml:"font_file"` // registered under FontFamily

	Precision int    `mapstructure:"precision" yaml:"precision"` // -1 keeps the shortest form
	Locale    string `mapstructure:"locale"    yaml:"locale"`

	Workers int `mapstructure:"workers" yaml:"workers"` // parallel frame encoders

	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"width":       "width",
	"height":      "height",
	"max":         "max",
	"from":        "from",
	"value":       "value",
	"label":       "label",
	"theme":       "theme",
	"font-family": "font_family",
	"font-weight": "font_weight",
	"font-file":   "font_file",
	"precision":   "precision",
	"locale":      "locale",
	"workers":     "workers",
	"log-level":   "logging.level",
}

// AddFlags registers the flags Load understands.
func AddFlags(fs *pflag.FlagSet) {
	fs.Int("width", 300, "canvas width in pixels")
	fs.Int("height", 300, "canvas height in pixels")
	fs.Float64("max", 100, "scale ceiling")
	fs.Float64("from", 0, "previous value, where the sweep starts")
	fs.Float64("value", 0, "value to show")
	fs.String("label", "", "label drawn after the value")
	fs.String("theme", "light", `"light", "dark" or a YAML theme file`)
	fs.String("font-family", "", "font family (default from the theme)")
	fs.String("font-weight", "", "font weight (default from the theme)")
	fs.String("font-file", "", "TrueType/OpenType file registered under --font-family")
	fs.Int("precision", -1, "fixed number of decimals, -1 for the shortest form")
	fs.String("locale", "", "BCP 47 language for digit grouping, e.g. de or en-US")
	fs.Int("workers", 4, "parallel frame encoders")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
}

// Load reads the configuration. path may be empty, in which case
// meter.yaml is looked up in the working directory and ignored when
// absent. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("meter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", 300)
	v.SetDefault("height", 300)
	v.SetDefault("max", 100.0)
	v.SetDefault("from", 0.0)
	v.SetDefault("value", 0.0)
	v.SetDefault("label", "")
	v.SetDefault("theme", "light")
	v.SetDefault("font_family", "")
	v.SetDefault("font_weight", "")
	v.SetDefault("font_file", "")
	v.SetDefault("precision", -1)
	v.SetDefault("locale", "")
	v.SetDefault("workers", 4)
	v.SetDefault("logging.level", "warn")
}

// Validate checks values that would make every command fail.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Max <= 0 {
		errs = append(errs, fmt.Errorf("max %v must be positive", c.Max))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d must be at least 1", c.Workers))
	}
	if c.FontFile != "" && c.FontFamily == "" {
		errs = append(errs, errors.New("font_file needs font_family"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
