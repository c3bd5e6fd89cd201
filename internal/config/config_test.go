package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/seerbp/petcode/internal/petcode/codec"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		GRPC: GRPCConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Codec: CodecConfig{
			CompressionLevel: 1,
			MaxDecodedSize:   1 << 20,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestGRPCAddr(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "0.0.0.0:8080", cfg.GRPC.Addr())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
grpc:
  host: 127.0.0.1
  port: 9090
codec:
  compression_level: 9
logging:
  level: debug
  format: console
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.GRPC.Host)
	assert.Equal(t, 9090, cfg.GRPC.Port)
	assert.Equal(t, 9, cfg.Codec.CompressionLevel)
	assert.Equal(t, codec.DefaultMaxDecodedSize, cfg.Codec.MaxDecodedSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PETCODE_GRPC_PORT", "7070")
	t.Setenv("PETCODE_CODEC_MAX_DECODED_SIZE", "4096")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.GRPC.Port)
	assert.Equal(t, 4096, cfg.Codec.MaxDecodedSize)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grpc:\n  port: 0\ncodec:\n  compression_level: 12\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grpc.port")
	assert.Contains(t, err.Error(), "codec.compression_level")
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateGRPCHostEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.GRPC.Host = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateCodecMaxDecodedSize(t *testing.T) {
	cfg := validConfig()
	cfg.Codec.MaxDecodedSize = 0
	assert.Error(t, cfg.Validate())
}

func TestCodecOptionsBuildCodec(t *testing.T) {
	cfg := validConfig()
	c, err := codec.New(cfg.Codec.Options()...)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

// Property-based tests

func TestPropertyValidPortRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		port := rapid.IntRange(1, 65535).Draw(t, "port")
		cfg := validConfig()
		cfg.GRPC.Port = port
		err := cfg.Validate()
		if err != nil {
			t.Fatalf("valid port %d rejected: %v", port, err)
		}
	})
}

func TestPropertyInvalidPortRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		port := rapid.OneOf(
			rapid.IntRange(-1000, 0),
			rapid.IntRange(65536, 100000),
		).Draw(t, "port")
		cfg := validConfig()
		cfg.GRPC.Port = port
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("invalid port %d accepted", port)
		}
	})
}

func TestPropertyCompressionLevelAgreesWithCodec(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(-10, 20).Draw(t, "level")
		cfg := validConfig()
		cfg.Codec.CompressionLevel = level
		_, codecErr := codec.New(cfg.Codec.Options()...)
		cfgErr := cfg.Validate()
		if (codecErr == nil) != (cfgErr == nil) {
			t.Fatalf("level %d: codec err %v, config err %v", level, codecErr, cfgErr)
		}
	})
}
