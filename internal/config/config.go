package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the effective Radar configuration: file values, then RADAR_*
// environment overrides, then defaults for anything still empty.
type Config struct {
	Path                string
	APIURL              string
	RadarDate           string
	LogDir              string
	PollSeconds         int
	RequestTimeout      time.Duration
	SearchCaseSensitive bool
}

const (
	defaultConfigPath     = "~/.config/radar/config.toml"
	defaultLogDir         = "~/.local/share/radar/logs"
	defaultAPIURL         = "127.0.0.1:8000"
	defaultPollSeconds    = 30
	defaultRequestTimeout = 5 * time.Second
	radarDateLayout       = "2006-01-02"
	logFileName           = "radar.log"
)

type fileConfig struct {
	APIURL                string `toml:"api_url"`
	RadarDate             string `toml:"radar_date"`
	LogDir                string `toml:"log_dir"`
	PollSeconds           int    `toml:"poll_seconds"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	SearchCaseSensitive   *bool  `toml:"search_case_sensitive"`
}

type envOverrides struct {
	APIURL                *string `env:"RADAR_API_URL"`
	RadarDate             *string `env:"RADAR_DATE"`
	LogDir                *string `env:"RADAR_LOG_DIR"`
	PollSeconds           *int    `env:"RADAR_POLL_SECONDS"`
	RequestTimeoutSeconds *int    `env:"RADAR_REQUEST_TIMEOUT_SECONDS"`
	SearchCaseSensitive   *bool   `env:"RADAR_SEARCH_CASE_SENSITIVE"`
}

// Load locates and parses the config file, falling back to defaults when
// it is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	raw, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	overrides.apply(&raw)

	cfg := Config{
		Path:                resolved,
		APIURL:              strings.TrimSpace(raw.APIURL),
		RadarDate:           strings.TrimSpace(raw.RadarDate),
		LogDir:              strings.TrimSpace(raw.LogDir),
		PollSeconds:         raw.PollSeconds,
		RequestTimeout:      time.Duration(raw.RequestTimeoutSeconds) * time.Second,
		SearchCaseSensitive: true,
	}
	if raw.SearchCaseSensitive != nil {
		cfg.SearchCaseSensitive = *raw.SearchCaseSensitive
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)
	if cfg.PollSeconds <= 0 {
		cfg.PollSeconds = defaultPollSeconds
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if err := ValidateRadarDate(cfg.RadarDate); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateRadarDate accepts an empty date (latest radar) or YYYY-MM-DD.
func ValidateRadarDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(radarDateLayout, date); err != nil {
		return fmt.Errorf("radar_date %q: want YYYY-MM-DD", date)
	}
	return nil
}

// PollInterval is PollSeconds as a duration.
func (c Config) PollInterval() time.Duration {
	if c.PollSeconds <= 0 {
		return defaultPollSeconds * time.Second
	}
	return time.Duration(c.PollSeconds) * time.Second
}

// LogPath returns the path to the Radar log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func readFile(path string) (fileConfig, error) {
	var raw fileConfig
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return raw, nil
		}
		return raw, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return raw, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

func (o envOverrides) apply(raw *fileConfig) {
	if o.APIURL != nil {
		raw.APIURL = *o.APIURL
	}
	if o.RadarDate != nil {
		raw.RadarDate = *o.RadarDate
	}
	if o.LogDir != nil {
		raw.LogDir = *o.LogDir
	}
	if o.PollSeconds != nil {
		raw.PollSeconds = *o.PollSeconds
	}
	if o.RequestTimeoutSeconds != nil {
		raw.RequestTimeoutSeconds = *o.RequestTimeoutSeconds
	}
	if o.SearchCaseSensitive != nil {
		v := *o.SearchCaseSensitive
		raw.SearchCaseSensitive = &v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
