package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	// An explicit path that does not exist is still "found" and fails to read.
	require.Error(t, err)

	ResetConfig()
	cfg, err = LoadConfig("", nil)
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Equal(t, DefaultHistoryFile, cfg.HistoryFile)
}

func TestLoadConfig_FromFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfgPath := filepath.Join(t.TempDir(), "teller.yaml")
	cfgContent := `format: json
prompt: "$ "
debug: true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0600))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.True(t, cfg.Debug)
	assert.Equal(t, DefaultHistoryFile, cfg.HistoryFile, "unset keys keep defaults")
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfgPath := filepath.Join(t.TempDir(), "teller.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: json\n"), 0600))

	t.Setenv("TELLER_FORMAT", "plain")
	t.Setenv("TELLER_HISTORY_FILE", "/tmp/hist")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.Format, "env var should override config file")
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfgPath := filepath.Join(t.TempDir(), "teller.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: json\n"), 0600))

	t.Setenv("TELLER_FORMAT", "plain")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("format", "f", DefaultFormat, "output format")
	require.NoError(t, flags.Set("format", "table"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.Format, "flag value should override config file and env var")
}

func TestLoadConfig_UnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfgPath := filepath.Join(t.TempDir(), "teller.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: json\n"), 0600))

	// Flag registered with a default but never set on the "command line".
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("format", "f", DefaultFormat, "output format")

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format, "unset flag defaults must not mask the config file")
}

func TestLoadConfig_DebugEnvVar(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("TELLER_DEBUG", "1")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
}

func TestGetCurrentConfig_BeforeLoad(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg := GetCurrentConfig()
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
}
