package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codescale/radar/internal/config"
	"github.com/codescale/radar/internal/prefs"
	"github.com/codescale/radar/internal/radar"
	"github.com/codescale/radar/internal/radarapi"
	"github.com/codescale/radar/internal/state"
	"github.com/codescale/radar/internal/ui"
)

// Options configure the Radar application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/radar/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
	RadarDate  string // YYYY-MM-DD; empty uses the configured date
	View       string // initial route, e.g. "dataTable" or "trendDetail/3"
}

// Run boots the Radar TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.LogPath())
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := NewClient(cfg)
	if err != nil {
		return err
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	store := &state.Store{}
	poller := NewPoller(store, client, cfg.RadarDate, cfg.PollInterval(), logger)
	poller.Start(ctx)

	logger.Info("radar started",
		"api", client.BaseURL(),
		"radar_date", cfg.RadarDate,
		"poll", cfg.PollInterval().String(),
	)

	err = ui.Run(ui.Options{
		Context:      ctx,
		Store:        store,
		Refresh:      poller.Trigger,
		Config:       cfg,
		Prefs:        userPrefs,
		PrefsPath:    prefsPath,
		InitialRoute: opts.View,
		Logger:       logger,
	})
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	logger.Info("radar stopped")
	return err
}

// LoadConfig reads the config file and applies command-line overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if opts.RadarDate != "" {
		if err := config.ValidateRadarDate(opts.RadarDate); err != nil {
			return config.Config{}, err
		}
		cfg.RadarDate = opts.RadarDate
	}
	return cfg, nil
}

// openLogger routes the standard logger and a slog text logger to path.
// The TUI owns the terminal, so nothing may write to stdout or stderr.
func openLogger(path string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "radar")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	return logger, func() { _ = f.Close() }, nil
}

// Source selects where FetchRecords reads from.
type Source string

const (
	SourceRadar Source = "radar"
	SourceItems Source = "items"
)

const itemsPageSize = 100

// FetchRecords loads one record set without starting the poller. The radar
// source returns the radar date alongside the records.
func FetchRecords(ctx context.Context, client radarapi.Fetcher, source Source, date string) ([]radar.TrendRecord, string, error) {
	switch source {
	case SourceRadar, "":
		resp, err := client.FetchRadar(ctx, date)
		if err != nil {
			return nil, "", fmt.Errorf("fetch radar: %w", err)
		}
		return radarapi.Records(resp.Trends), resp.RadarDate, nil
	case SourceItems:
		trends, err := fetchAllItems(ctx, client)
		if err != nil {
			return nil, "", err
		}
		return radarapi.Records(trends), "", nil
	default:
		return nil, "", fmt.Errorf("unknown source %q: want radar or items", source)
	}
}

// fetchAllItems pages through /items until the reported total is reached.
func fetchAllItems(ctx context.Context, client radarapi.Fetcher) ([]radarapi.Trend, error) {
	var out []radarapi.Trend
	for {
		page, err := client.FetchItems(ctx, radarapi.ItemsQuery{Skip: len(out), Limit: itemsPageSize})
		if err != nil {
			return nil, fmt.Errorf("fetch items: %w", err)
		}
		out = append(out, page.Items...)
		if len(page.Items) == 0 || len(out) >= page.Total {
			return out, nil
		}
	}
}

// NewClient builds the backend client for cfg.
func NewClient(cfg config.Config) (*radarapi.Client, error) {
	client, err := radarapi.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("init radar client: %w", err)
	}
	return client, nil
}

// FetchDetail loads a single stored trend by backend id.
func FetchDetail(ctx context.Context, client radarapi.Fetcher, id int64) (radar.TrendDetail, error) {
	item, err := client.FetchItem(ctx, id)
	if err != nil {
		if radarapi.IsNotFound(err) {
			return radar.TrendDetail{}, fmt.Errorf("item %d: %w", id, radar.ErrNotFound)
		}
		return radar.TrendDetail{}, fmt.Errorf("fetch item: %w", err)
	}
	rec := item.Record()
	if rec.ID <= 0 {
		rec.ID = id
	}
	return radar.LoadByID([]radar.TrendRecord{rec}, rec.ID)
}
