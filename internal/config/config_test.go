package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearRadarEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RADAR_API_URL", "RADAR_DATE", "RADAR_LOG_DIR",
		"RADAR_POLL_SECONDS", "RADAR_REQUEST_TIMEOUT_SECONDS", "RADAR_SEARCH_CASE_SENSITIVE",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	clearRadarEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.PollInterval() != defaultPollSeconds*time.Second || cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("poll = %v timeout = %v, want defaults", cfg.PollInterval(), cfg.RequestTimeout)
	}
	if !cfg.SearchCaseSensitive {
		t.Fatalf("SearchCaseSensitive = false, want true by default")
	}
	if cfg.RadarDate != "" {
		t.Fatalf("RadarDate = %q, want latest", cfg.RadarDate)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	clearRadarEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
api_url = "  10.0.0.5:9999  "
radar_date = " 2026-01-30 "
log_dir = "  ~/.radar/logs  "
poll_seconds = 10
request_timeout_seconds = 3
search_case_sensitive = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "10.0.0.5:9999" || cfg.RadarDate != "2026-01-30" {
		t.Fatalf("cfg = %#v, want trimmed values", cfg)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.PollInterval() != 10*time.Second || cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("poll = %v timeout = %v", cfg.PollInterval(), cfg.RequestTimeout)
	}
	if cfg.SearchCaseSensitive {
		t.Fatalf("SearchCaseSensitive = true, want false from file")
	}
	if cfg.LogPath() != filepath.Join(cfg.LogDir, "radar.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearRadarEnv(t)
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
api_url = "file:1"
poll_seconds = 10
search_case_sensitive = true
`)
	t.Setenv("RADAR_API_URL", "env:2")
	t.Setenv("RADAR_POLL_SECONDS", "7")
	t.Setenv("RADAR_SEARCH_CASE_SENSITIVE", "false")
	t.Setenv("RADAR_DATE", "2025-12-31")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "env:2" || cfg.PollSeconds != 7 || cfg.SearchCaseSensitive || cfg.RadarDate != "2025-12-31" {
		t.Fatalf("cfg = %#v, want env overrides applied", cfg)
	}
}

func TestLoad_BadEnvFails(t *testing.T) {
	clearRadarEnv(t)
	t.Setenv("RADAR_POLL_SECONDS", "soon")
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("Load error = %v, want parse env error", err)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	clearRadarEnv(t)
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
api_url = "   "
log_dir = ""
poll_seconds = -4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL || cfg.PollSeconds != defaultPollSeconds {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearRadarEnv(t)
	path := writeConfig(t, `api_url = [`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config error", err)
	}
}

func TestLoad_InvalidRadarDateFails(t *testing.T) {
	clearRadarEnv(t)
	path := writeConfig(t, `radar_date = "30/01/2026"`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Fatalf("Load error = %v, want radar_date error", err)
	}
}

func TestValidateRadarDate(t *testing.T) {
	for _, ok := range []string{"", "2026-01-30"} {
		if err := ValidateRadarDate(ok); err != nil {
			t.Fatalf("ValidateRadarDate(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"2026-13-01", "yesterday", "2026-1-3"} {
		if err := ValidateRadarDate(bad); err == nil {
			t.Fatalf("ValidateRadarDate(%q) = nil, want error", bad)
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/radar.log")) {
		t.Fatalf("LogPath = %q, want it to end with /radar.log", got)
	}
}
