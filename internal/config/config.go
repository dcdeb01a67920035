// SPDX-License-Identifier: MIT

// Package config provides configuration loading for the utmatrix CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/utmatrix/matrix"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the application configuration.
type Config struct {
	// Sample configuration for the "sample" command
	Sample SampleConfig `mapstructure:"sample"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`

	// Numeric policy applied to every container the CLI builds
	Numeric NumericConfig `mapstructure:"numeric"`
}

// SampleConfig holds settings of the demonstration run.
type SampleConfig struct {
	Size int `mapstructure:"size"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// NumericConfig mirrors the matrix package numeric policy.
type NumericConfig struct {
	ValidateNaNInf bool `mapstructure:"validate_nan_inf"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Sample: SampleConfig{
			Size: 5,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Numeric: NumericConfig{
			ValidateNaNInf: matrix.DefaultValidateNaNInf,
		},
	}
}

// Load loads configuration from file and environment.
// An empty configPath searches ./utmatrix.yaml; a missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("utmatrix")
		v.SetConfigType("yaml")
	}

	// Environment variables: UTMATRIX_SAMPLE_SIZE, UTMATRIX_OUTPUT_FORMAT, ...
	v.SetEnvPrefix("UTMATRIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file is optional
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	// Unmarshal
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Sample.Size < 0 || c.Sample.Size > matrix.MaxMatrixSize {
		return fmt.Errorf("%w: sample.size %d not in [0,%d]", ErrInvalidConfig, c.Sample.Size, matrix.MaxMatrixSize)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}

	return nil
}

// MatrixOptions translates the numeric policy into matrix options.
func (c *Config) MatrixOptions() []matrix.Option {
	if c.Numeric.ValidateNaNInf {
		return []matrix.Option{matrix.WithValidateNaNInf()}
	}

	return []matrix.Option{matrix.WithNoValidateNaNInf()}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("sample.size", d.Sample.Size)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("numeric.validate_nan_inf", d.Numeric.ValidateNaNInf)
}
