package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codescale/radar/internal/radar"
	"github.com/codescale/radar/internal/radarapi"
)

const logoText = "radar"

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := newBgStyle(m.theme.Surface)

	if !m.snapshot.HasData {
		return m.renderConnectingHeader(styles, bg)
	}

	return styles.Header.Width(m.width).Render(m.buildStatusContent(styles, bg))
}

// renderConnectingHeader shows the connecting/error state before any data.
func (m Model) renderConnectingHeader(styles Styles, bg bgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.snapshot.LastUpdated.IsZero() {
			last = m.snapshot.LastUpdated.Format("15:04:05")
		}
		parts := []string{
			bg.Render(logoText, styles.Logo),
			bg.Render("API "+classifyConnectionError(m.snapshot.LastError), styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		if logPath := m.config.LogPath(); logPath != "" {
			parts = append(parts,
				bg.Render("logs", styles.FaintText)+bg.Spaces(1)+
					bg.Render(truncateMiddle(logPath, 50), styles.MutedText))
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render(logoText, styles.Logo) + sep +
			bg.Render(m.spinner.View(), styles.AccentText) + bg.Spaces(1) +
			bg.Render("Connecting to Radar API...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg bgStyle) string {
	compact := m.width < layoutCompactWidth
	sep := bg.Spaces(2)
	sum := m.summary

	var parts []string
	parts = append(parts, bg.Render(logoText, styles.Logo))

	switch {
	case m.snapshot.IsOffline():
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	case m.snapshot.HasHealth && m.snapshot.Health.Healthy():
		parts = append(parts, bg.Render("● API", styles.StateStyle(radar.StatePositive)))
	default:
		parts = append(parts, bg.Render("● API", styles.WarningText))
	}

	if m.snapshot.RadarDate != "" {
		parts = append(parts, bg.Render(m.snapshot.RadarDate, styles.InfoText))
	}

	signalLabel, noiseLabel, totalLabel := "Signal:", "Noise:", "Total:"
	if compact {
		signalLabel, noiseLabel, totalLabel = "S:", "N:", "T:"
	}
	dot := sep + bg.Render("•", styles.FaintText) + sep
	parts = append(parts,
		bg.Render(signalLabel, styles.MutedText)+bg.Spaces(1)+
			bg.Render(fmt.Sprintf("%d", sum.Signal), styles.StateStyle(radar.StatePositive))+dot+
			bg.Render(noiseLabel, styles.MutedText)+bg.Spaces(1)+
			bg.Render(fmt.Sprintf("%d", sum.Noise), styles.StateStyle(radar.StateNegative))+dot+
			bg.Render(totalLabel, styles.MutedText)+bg.Spaces(1)+
			bg.Render(fmt.Sprintf("%d", sum.Total), styles.Text),
	)

	if refreshed := sum.FormatRefreshed(); refreshed != "" && !compact {
		parts = append(parts, bg.Render("Refreshed", styles.FaintText)+bg.Spaces(1)+bg.Render(refreshed, styles.MutedText))
	}

	if m.refreshing {
		parts = append(parts, bg.Render(m.spinner.View(), styles.AccentText))
	}

	if m.snapshot.LastError != nil {
		maxErr := 60
		if compact {
			maxErr = 24
		}
		parts = append(parts,
			bg.Render(classifyConnectionError(m.snapshot.LastError), styles.DangerText)+bg.Spaces(1)+
				bg.Render(truncate(m.snapshot.LastError.Error(), maxErr), styles.DangerText.Bold(false)),
		)
	}

	return bg.Join(parts, sep)
}

// classifyConnectionError turns a poll error into a short banner word.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *radarapi.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("HTTP %d", statusErr.Code)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}
