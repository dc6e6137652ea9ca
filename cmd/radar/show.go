package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codescale/radar/internal/app"
	"github.com/codescale/radar/internal/radar"
)

func newShowCmd(opts *app.Options) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print one stored trend",
		Long: `Print a single trend from the backend's item store, looked up by id.
Ids are the ones shown in the first column of "radar list --source items".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q: want a positive integer", args[0])
			}
			if noColor {
				color.NoColor = true
			}

			cfg, err := app.LoadConfig(*opts)
			if err != nil {
				return err
			}
			client, err := app.NewClient(cfg)
			if err != nil {
				return err
			}
			detail, err := app.FetchDetail(cmd.Context(), client, id)
			if errors.Is(err, radar.ErrNotFound) {
				return fmt.Errorf("no trend with id %d", id)
			}
			if err != nil {
				return err
			}
			writeDetail(cmd.OutOrStdout(), detail)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colour output")
	return cmd
}

func writeDetail(w io.Writer, d radar.TrendDetail) {
	cc := classColor(d.Classification)
	color.New(color.Bold).Fprintf(w, "%s %s\n", cc.Sprint(radar.ClassificationIcon(d.Classification).Glyph()), d.ToolName)

	label := color.New(color.Faint)
	row := func(name, value string) {
		fmt.Fprintf(w, "  %s %s\n", label.Sprintf("%-12s", name), value)
	}
	row("Focus area", d.FocusAreaText)
	row("Class", cc.Sprint(strings.ToUpper(d.Classification)))
	row("Confidence", fmt.Sprintf("%d (%s)", d.ConfidenceScore, d.ConfidenceText()))
	verdict := "not recommended"
	if d.ArchitecturalVerdict {
		verdict = "adopt"
	}
	row("Verdict", verdict)
	if d.Timestamp != "" {
		row("Analysed", d.Timestamp)
	}

	if d.TechnicalInsight != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, d.TechnicalInsight)
	}
	writeList(w, "Signal evidence", d.SignalEvidence)
	writeList(w, "Noise indicators", d.NoiseIndicators)
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w)
	color.New(color.Bold).Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
