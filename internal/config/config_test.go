package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/ratcalc/internal/errors"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("ratcalc", nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseConfigFlags(t *testing.T) {
	args := []string{
		"-n", "12", "--p-num", "1", "--p-den", "2", "-k", "3",
		"--timeout", "5s", "--precision", "4", "--simulate", "1000", "--seed", "9",
		"-o", "out.txt", "--metrics-file", "m.prom", "-v", "--no-color",
		"--theme", "light",
	}
	cfg, err := ParseConfig("ratcalc", args, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Trials)
	assert.Equal(t, int64(1), cfg.PNum)
	assert.Equal(t, int64(2), cfg.PDen)
	assert.Equal(t, 3, cfg.AtLeast)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, 1000, cfg.Simulate)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, "out.txt", cfg.OutputFile)
	assert.Equal(t, "m.prom", cfg.MetricsFile)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "light", cfg.Theme)
	assert.False(t, cfg.Quiet)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"bad integer", []string{"-n", "many"}},
		{"positional argument", []string{"extra"}},
		{"too many trials", []string{"-n", "67"}},
		{"zero denominator", []string{"--p-den", "0"}},
		{"probability above one", []string{"--p-num", "7", "--p-den", "6"}},
		{"negative probability", []string{"--p-num", "-1"}},
		{"at-least beyond trials", []string{"-n", "3", "-k", "4"}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"negative simulate", []string{"--simulate", "-1"}},
		{"verbose and quiet", []string{"-v", "-q"}},
		{"unknown theme", []string{"--theme", "solarized"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("ratcalc", tt.args, &bytes.Buffer{})
			var ce apperrors.ConfigError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseConfig("ratcalc", []string{"-h"}, &buf)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, buf.String(), "Usage: ratcalc")
	assert.Contains(t, buf.String(), "p-den")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"TRIALS", "20")
	t.Setenv(EnvPrefix+"P_DEN", "10")
	t.Setenv(EnvPrefix+"TIMEOUT", "2m")
	t.Setenv(EnvPrefix+"QUIET", "yes")
	t.Setenv(EnvPrefix+"SEED", "not-a-number")
	t.Setenv(EnvPrefix+"THEME", "orange")

	cfg, err := ParseConfig("ratcalc", []string{"--p-den", "4"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Trials)
	assert.Equal(t, int64(4), cfg.PDen, "flag wins over environment")
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, uint64(0), cfg.Seed, "invalid values are ignored")
	assert.Equal(t, "orange", cfg.Theme)
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseBoolEnv(tt.val, tt.def), "parseBoolEnv(%q, %v)", tt.val, tt.def)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ratcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleFile = `
[distribution]
trials = 30
p-num = 1
p-den = 2
at-least = 15

[run]
timeout = "45s"
simulate = 5000
seed = 7

[output]
precision = 10
metrics-file = "file.prom"
no-color = true
theme = "none"
`

func TestConfigFileLayer(t *testing.T) {
	path := writeConfigFile(t, sampleFile)

	cfg, err := ParseConfig("ratcalc", []string{"--config", path, "-k", "10"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Trials)
	assert.Equal(t, int64(1), cfg.PNum)
	assert.Equal(t, int64(2), cfg.PDen)
	assert.Equal(t, 10, cfg.AtLeast, "flag wins over file")
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 5000, cfg.Simulate)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 10, cfg.Precision)
	assert.Equal(t, "file.prom", cfg.MetricsFile)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "none", cfg.Theme)
	assert.Empty(t, cfg.OutputFile, "absent keys keep their default")
}

func TestConfigFileFromEnvironment(t *testing.T) {
	path := writeConfigFile(t, "[distribution]\ntrials = 8\n")
	t.Setenv(EnvPrefix+"CONFIG", path)
	t.Setenv(EnvPrefix+"P_NUM", "3")

	cfg, err := ParseConfig("ratcalc", nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, 8, cfg.Trials)
	assert.Equal(t, int64(3), cfg.PNum, "environment wins over file")
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "[distribution\ntrials = 1"},
		{"wrong type", "[distribution]\ntrials = \"ten\"\n"},
		{"bad timeout", "[run]\ntimeout = \"soon\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfigFile(t, tt.content))
			var ce apperrors.ConfigError
			assert.ErrorAs(t, err, &ce)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		var ce apperrors.ConfigError
		assert.ErrorAs(t, err, &ce)
	})
}

func TestParseConfigCompletion(t *testing.T) {
	cfg, err := ParseConfig("ratcalc", []string{"--completion", "zsh"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "zsh", cfg.Completion)
}

func TestThemeDefaultsAndValidation(t *testing.T) {
	cfg, err := ParseConfig("ratcalc", nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, cfg.Theme)

	t.Setenv(EnvPrefix+"THEME", "neon")
	_, err = ParseConfig("ratcalc", nil, &bytes.Buffer{})
	var ce apperrors.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Error(), "dark, light, orange, none")
}
