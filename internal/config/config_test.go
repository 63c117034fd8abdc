package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DESKBIRD_TOKEN", "DESKBIRD_BASE_URL", "DESKBIRD_OFFICE_ID",
		"DESKBIRD_TZ", "DESKBIRD_HORIZON_DAYS", "DESKBIRD_LOG_FILE", "DESKBIRD_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DESKBIRD_TOKEN", "tok-123")

	cfg, err := load(nil)
	require.NoError(t, err)

	assert.Equal(t, "tok-123", cfg.Token)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeZone, cfg.TimeZone)
	assert.Equal(t, 14, cfg.HorizonDays)
}

func TestLoad_MissingToken(t *testing.T) {
	clearEnv(t)

	_, err := load(nil)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "deskbird.toml", `
token = "file-token"
base_url = "https://staging.example.com/v1.1"
office_id = "office-7"
timezone = "America/Argentina/Buenos_Aires"
horizon_days = 7
`)

	cfg, err := load([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, "https://staging.example.com/v1.1", cfg.BaseURL)
	assert.Equal(t, "office-7", cfg.OfficeID)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.TimeZone)
	assert.Equal(t, 7, cfg.HorizonDays)
}

func TestLoad_FirstExistingFileWins(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	first := writeFile(t, dir, "first.toml", `token = "first"`)
	second := writeFile(t, dir, "second.toml", `token = "second"`)

	cfg, err := load([]string{first, second})
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Token)
}

func TestLoad_MalformedFileSkipped(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.toml", `token = [unterminated`)
	good := writeFile(t, dir, "good.toml", `token = "good"`)

	cfg, err := load([]string{broken, good})
	require.NoError(t, err)
	assert.Equal(t, "good", cfg.Token)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "deskbird.toml", `
token = "file-token"
office_id = "office-file"
`)
	t.Setenv("DESKBIRD_TOKEN", "env-token")
	t.Setenv("DESKBIRD_HORIZON_DAYS", "30")

	cfg, err := load([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "office-file", cfg.OfficeID)
	assert.Equal(t, 30, cfg.HorizonDays)
}

func TestLocation(t *testing.T) {
	cfg := &Config{TimeZone: "Europe/Berlin"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	cfg.TimeZone = "Not/AZone"
	_, err = cfg.Location()
	assert.ErrorIs(t, err, ErrInvalidTimeZone)
}
