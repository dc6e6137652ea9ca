// Package config loads the Radar TOML configuration.
//
// # Resolution
//
//  1. The path passed to Load, or ~/.config/radar/config.toml
//  2. A missing file is not an error; every field falls back to its default
//  3. RADAR_* environment variables override file values
//  4. Empty or non-positive values take the defaults below
//
// # Fields
//
//	api_url                  RADAR_API_URL                  127.0.0.1:8000
//	radar_date               RADAR_DATE                     "" (latest radar)
//	log_dir                  RADAR_LOG_DIR                  ~/.local/share/radar/logs
//	poll_seconds             RADAR_POLL_SECONDS             30
//	request_timeout_seconds  RADAR_REQUEST_TIMEOUT_SECONDS  5
//	search_case_sensitive    RADAR_SEARCH_CASE_SENSITIVE    true
//
// radar_date must be YYYY-MM-DD when set. Paths starting with ~ are
// expanded against the user's home directory and made absolute.
//
// The log file lives at <log_dir>/radar.log; see Config.LogPath.
package config
