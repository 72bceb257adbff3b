package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tmpltime.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// clearEnv unsets the override variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvLogFormat, EnvNamedZones, EnvLocales} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Chdir(t.TempDir())
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Capabilities.NamedZonesEnabled())
	assert.True(t, cfg.Capabilities.LocalesEnabled())

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	t.Setenv("TMPLTIME_TEST_METRICS", "/tmp/out.prom")

	path := writeConfig(t, "version: \"1\"\n"+
		"capabilities:\n"+
		"  named_zones: false\n"+
		"logging:\n"+
		"  level: DEBUG\n"+
		"  format: \" json \"\n"+
		"metrics:\n"+
		"  enabled: true\n"+
		"  file: ${TMPLTIME_TEST_METRICS}\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Capabilities.NamedZonesEnabled())
	assert.True(t, cfg.Capabilities.LocalesEnabled())
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/out.prom", cfg.Metrics.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "version: \"1\"\nlogging:\n  level: debug\n")

	t.Setenv(EnvLogLevel, "warning")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvNamedZones, "0")
	t.Setenv(EnvLocales, "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.False(t, cfg.Capabilities.NamedZonesEnabled())
	assert.False(t, cfg.Capabilities.LocalesEnabled())
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte(EnvLocales+"=false\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv(EnvLocales) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Capabilities.LocalesEnabled())
}

func TestLoad_DotEnvLocalOverridesDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte(EnvLogLevel+"=debug\n"+EnvLocales+"=false\n"), 0o600))
	require.NoError(t, os.WriteFile(".env.local", []byte(EnvLogLevel+"=error\n"+EnvNamedZones+"=false\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, LogLevelError, cfg.Logging.Level)
	assert.False(t, cfg.Capabilities.LocalesEnabled())
	assert.False(t, cfg.Capabilities.NamedZonesEnabled())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		want    string
	}{
		{"bad yaml", "version: [", nil, "failed to parse config file"},
		{"bad version", "version: \"2\"\n", nil, `unsupported configuration version: "2"`},
		{"bad level", "version: \"1\"\nlogging:\n  level: loud\n", nil, `invalid log level "loud"`},
		{"bad format", "version: \"1\"\nlogging:\n  format: xml\n", nil, `invalid log format "xml"`},
		{"bad bool", "version: \"1\"\n", map[string]string{EnvNamedZones: "maybe"}, "invalid boolean in TMPLTIME_NAMED_ZONES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tmpltime.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"1\"\n\n"+
		"[capabilities]\nlocales = false\n\n"+
		"[logging]\nlevel = \"error\"\nformat = \"json\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Capabilities.NamedZonesEnabled())
	assert.False(t, cfg.Capabilities.LocalesEnabled())
	assert.Equal(t, LogLevelError, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)

	require.NoError(t, os.WriteFile(path, []byte("version = [\n"), 0o600))
	_, err = Load(path)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestInit_TOMLRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tmpltime.toml")

	require.NoError(t, Init(path, false))
	// #nosec G304 -- path is controlled by test.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[capabilities]")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Capabilities.LocalesEnabled())
	assert.Equal(t, "./tmpltime.prom", cfg.Metrics.File)
}

func TestInit(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tmpltime.yaml")

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Capabilities.NamedZonesEnabled())
	assert.Equal(t, "./tmpltime.prom", cfg.Metrics.File)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))

	require.NoError(t, Init(path, true))
}

func TestLogLevelMapping(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel(" WARNING "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("verbose"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat("yaml"))
	assert.Equal(t, "DEBUG", LogLevelDebug.SlogLevel().String())
	assert.Equal(t, "INFO", LogLevel("").SlogLevel().String())
}
