package cmd

import (
	"fmt"

	"iban-gen/internal/engine"
	"iban-gen/internal/schema"
	"iban-gen/internal/table"

	"github.com/spf13/viper"
)

type InputConfig struct {
	Path     string `mapstructure:"path"`
	Encoding string `mapstructure:"encoding"`
	Layout   string `mapstructure:"layout"`
}

type OutputConfig struct {
	Path string `mapstructure:"path"`
}

type RegistryConfig struct {
	HeaderLabel string `mapstructure:"header_label"`
	SEPAToken   string `mapstructure:"sepa_token"`
	Strict      bool   `mapstructure:"strict"`
	CheckLength bool   `mapstructure:"check_length"`
}

type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Columns  schema.Columns `mapstructure:"columns"`
	Registry RegistryConfig `mapstructure:"registry"`
}

func setDefaults() {
	cols := schema.DefaultColumns()

	viper.SetDefault("input.path", "swift_iban_registry_txt.txt")
	viper.SetDefault("input.encoding", table.DefaultEncoding)
	viper.SetDefault("input.layout", string(table.LayoutRows))
	viper.SetDefault("output.path", "generated_specs.txt")
	viper.SetDefault("columns.country_code", cols.CountryCode)
	viper.SetDefault("columns.sepa", cols.SEPA)
	viper.SetDefault("columns.structure", cols.Structure)
	viper.SetDefault("columns.length", cols.Length)
	viper.SetDefault("registry.header_label", engine.DefaultHeaderLabel)
	viper.SetDefault("registry.sepa_token", engine.DefaultSEPAToken)
	viper.SetDefault("registry.strict", false)
	viper.SetDefault("registry.check_length", false)
	viper.SetDefault("log.level", "info")
}

// GetConfig decodes and validates the effective configuration
// (flag > env > config file > default).
func GetConfig() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}
	if _, err := table.ParseLayout(c.Input.Layout); err != nil {
		return fmt.Errorf("input.layout: %w", err)
	}
	if _, err := table.LookupEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	if err := c.Columns.Validate(); err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	return nil
}

// BuildOptions translates the registry settings for engine.Build.
func (c *Config) BuildOptions() engine.BuildOptions {
	opts := engine.BuildOptions{
		HeaderLabel: c.Registry.HeaderLabel,
		SEPAToken:   c.Registry.SEPAToken,
		CheckLength: c.Registry.CheckLength,
		OnDuplicate: engine.WarnDuplicates(Logger),
	}
	if c.Registry.Strict {
		opts.OnDuplicate = engine.RejectDuplicates
	}
	return opts
}
