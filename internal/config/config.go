// Package config provides Viper-based configuration loading for the petcode
// services.
package config

import (
	"fmt"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/viper"

	"github.com/seerbp/petcode/internal/petcode/codec"
)

// EnvPrefix prefixes every environment variable override, e.g.
// PETCODE_GRPC_PORT.
const EnvPrefix = "PETCODE"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GRPCConfig holds the PetCodeService listener settings.
type GRPCConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (g GRPCConfig) Addr() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}

// CodecConfig holds share-code compression settings.
type CodecConfig struct {
	// CompressionLevel is the gzip level, -2 (Huffman only) through 9.
	CompressionLevel int `mapstructure:"compression_level"`
	// MaxDecodedSize bounds a decompressed payload, in bytes, and the node
	// count of a parsed mapping document.
	MaxDecodedSize int `mapstructure:"max_decoded_size"`
}

// Options converts the settings into codec options.
func (c CodecConfig) Options() []codec.Option {
	return []codec.Option{
		codec.WithCompressionLevel(c.CompressionLevel),
		codec.WithMaxDecodedSize(c.MaxDecodedSize),
	}
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	GRPC    GRPCConfig    `mapstructure:"grpc"`
	Codec   CodecConfig   `mapstructure:"codec"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGRPC(c.GRPC); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCodec(c.Codec); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGRPC(g GRPCConfig) error {
	var errs []string
	if g.Host == "" {
		errs = append(errs, "grpc.host must not be empty")
	}
	if g.Port < 1 || g.Port > 65535 {
		errs = append(errs, fmt.Sprintf("grpc.port must be 1-65535, got %d", g.Port))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCodec(c CodecConfig) error {
	var errs []string
	if c.CompressionLevel < gzip.HuffmanOnly || c.CompressionLevel > gzip.BestCompression {
		errs = append(errs, fmt.Sprintf("codec.compression_level must be %d-%d, got %d",
			gzip.HuffmanOnly, gzip.BestCompression, c.CompressionLevel))
	}
	if c.MaxDecodedSize < 1 {
		errs = append(errs, fmt.Sprintf("codec.max_decoded_size must be >= 1, got %d", c.MaxDecodedSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and PETCODE_ environment
// overrides applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 8080)

	v.SetDefault("codec.compression_level", codec.DefaultCompressionLevel)
	v.SetDefault("codec.max_decoded_size", codec.DefaultMaxDecodedSize)
}
