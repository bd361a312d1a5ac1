package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/savecode/format"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	require.Equal(t, format.CompressionNone, cfg.Compression)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SAVECODE_LOG_LEVEL", "debug")
	t.Setenv("SAVECODE_COMPRESSION", "S2")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	require.Equal(t, format.CompressionS2, cfg.Compression)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "level", key: "SAVECODE_LOG_LEVEL", value: "loud"},
		{name: "compression", key: "SAVECODE_COMPRESSION", value: "brotli"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.ErrorContains(t, err, "parse env:")
		})
	}
}
