// Package config loads the settings of the command line tools from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"go.uber.org/zap/zapcore"

	"github.com/picklive/money"
)

// Prefix is the prefix of the environment variables read by [Load].
const Prefix = "MONEY_"

// Config holds the settings read from MONEY_* variables.
type Config struct {
	Env             string `koanf:"env" validate:"required,oneof=development production"`
	DefaultCurrency string `koanf:"default_currency" validate:"required"`
	LogLevel        string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
	Subunits        bool   `koanf:"subunits"`
}

var defaults = map[string]interface{}{
	"env":              "production",
	"default_currency": money.GBP.Code(),
	"log_level":        "warn",
	"subunits":         true,
}

// Load reads the configuration from the environment, on top of defaults.
// MONEY_DEFAULT_CURRENCY=USD sets DefaultCurrency.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults, "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = k.Load(env.Provider(Prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, Prefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := &Config{}
	err = k.Unmarshal("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Currency resolves the default currency.
func (c *Config) Currency() (money.Currency, error) {
	return money.ParseCurr(c.DefaultCurrency)
}

// Level returns the zap level of LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}
