// Package config loads tagcheck settings from an optional .tagcheck.yaml,
// TAGCHECK_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/tagcheck/markup"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("tagcheck.config")

type Config struct {
	Format      string   `mapstructure:"format" validate:"oneof=string json line"`
	RawText     []string `mapstructure:"raw_text" validate:"dive,required"`
	Void        []string `mapstructure:"void" validate:"dive,required"`
	Include     []string `mapstructure:"include" validate:"min=1,dive,required"`
	Concurrency int      `mapstructure:"concurrency" validate:"min=1"`
	Addr        string   `mapstructure:"addr" validate:"required"`
	NoColor     bool     `mapstructure:"no_color"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"format":      "format",
	"raw-text":    "raw_text",
	"void":        "void",
	"include":     "include",
	"concurrency": "concurrency",
	"addr":        "addr",
	"no-color":    "no_color",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", "string")
	v.SetDefault("raw_text", []string{})
	v.SetDefault("void", []string{})
	v.SetDefault("include", []string{"**/*.html", "**/*.htm"})
	v.SetDefault("concurrency", 8)
	v.SetDefault("addr", ":8080")
	v.SetDefault("no_color", false)
}

// BindFlags makes any of the known flags present in flags override the
// config file and environment.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads configuration into v and validates it. If file is empty, a
// .tagcheck.yaml in the working directory or $HOME is used when present.
func Load(v *viper.Viper, file string) (Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("TAGCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".tagcheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Debugf("using config file %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MarkupOptions turns the element settings into scanner options.
func (c Config) MarkupOptions() []markup.Option {
	return []markup.Option{
		markup.WithRawText(c.RawText...),
		markup.WithVoid(c.Void...),
	}
}
