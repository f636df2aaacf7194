package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	return Load(NewFlagSet("idxreport", io.Discard), args)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "", cfg.Endpoint)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 7, cfg.Days)
	assert.Equal(t, "indexes.json", cfg.DataFile)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load(t,
		"--endpoint", "http://localhost:9200",
		"--debug",
		"--days", "3",
		"--file", "fixtures/day.json",
		"--top", "10",
		"--shard-target-gb", "50",
		"--group",
		"--insecure",
		"--timeout", "30s",
		"-i",
		"-v",
		"--log-file", "/tmp/idxreport.log",
	)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Endpoint:      "http://localhost:9200",
		Debug:         true,
		Days:          3,
		DataFile:      "fixtures/day.json",
		Top:           10,
		ShardTargetGB: 50,
		Group:         true,
		Insecure:      true,
		Timeout:       30 * time.Second,
		Interactive:   true,
		Verbose:       true,
		LogFile:       "/tmp/idxreport.log",
	}, cfg)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("IDXREPORT_ENDPOINT", "http://es.internal:9200")
	t.Setenv("IDXREPORT_DAYS", "14")
	t.Setenv("IDXREPORT_SHARD_TARGET_GB", "40")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "http://es.internal:9200", cfg.Endpoint)
	assert.Equal(t, 14, cfg.Days)
	assert.Equal(t, 40.0, cfg.ShardTargetGB)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("IDXREPORT_DAYS", "14")

	cfg, err := load(t, "--days", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Days)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "idxreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"endpoint: https://prod:9200\n"+
			"days: 30\n"+
			"top: 0\n"+
			"timeout: 45s\n"+
			"group: true\n"), 0o600))

	cfg, err := load(t, "--config", path, "--top", "3")
	require.NoError(t, err)
	assert.Equal(t, "https://prod:9200", cfg.Endpoint)
	assert.Equal(t, 30, cfg.Days)
	assert.Equal(t, 3, cfg.Top, "flag must win over config file")
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.True(t, cfg.Group)
}

func TestLoad_ConfigFileMissing(t *testing.T) {
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := load(t, "--bogus")
	require.Error(t, err)
}

func TestLoad_ExtraArgument(t *testing.T) {
	_, err := load(t, "--debug", "extra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected argument "extra"`)
}

func TestLoad_Help(t *testing.T) {
	_, err := load(t, "--help")
	assert.True(t, errors.Is(err, pflag.ErrHelp))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"empty endpoint is fine", func(c *Config) { c.Endpoint = "" }, ""},
		{"zero days", func(c *Config) { c.Days = 0 }, "--days"},
		{"negative top", func(c *Config) { c.Top = -1 }, "--top"},
		{"top zero means all", func(c *Config) { c.Top = 0 }, ""},
		{"zero shard target", func(c *Config) { c.ShardTargetGB = 0 }, "--shard-target-gb"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "--timeout"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
