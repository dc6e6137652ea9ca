package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/codescale/radar/internal/app"
	"github.com/codescale/radar/internal/radar"
)

type listFlags struct {
	search        string
	focus         string
	class         string
	sort          string
	reverse       bool
	caseSensitive bool
	source        string
	noColor       bool
}

func newListCmd(opts *app.Options) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print trends as a table",
		Long: `Print the radar as a table, filtered and sorted the same way as the
dashboard's data table.

Examples:
  radar list                               # every trend of the latest radar
  radar list --class signal --sort confidence
  radar list --focus durable_runtime --search temporal
  radar list --source items                # every stored trend, all dates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, *opts, flags)
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "substring of tool name or insight")
	cmd.Flags().StringVar(&flags.focus, "focus", radar.FilterAll, "focus area: all, "+strings.Join(radar.FocusAreas(), ", "))
	cmd.Flags().StringVar(&flags.class, "class", radar.FilterAll, "classification: all, "+strings.Join(radar.Classifications(), ", "))
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort field: confidence or name")
	cmd.Flags().BoolVar(&flags.reverse, "reverse", false, "flip the sort direction")
	cmd.Flags().BoolVar(&flags.caseSensitive, "case-sensitive", true, "match search case (default from config)")
	cmd.Flags().StringVar(&flags.source, "source", string(app.SourceRadar), "data source: radar or items")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colour output")
	return cmd
}

func runList(cmd *cobra.Command, opts app.Options, flags listFlags) error {
	if flags.noColor {
		color.NoColor = true
	}

	list, err := buildListState(flags)
	if err != nil {
		return err
	}

	cfg, err := app.LoadConfig(opts)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("case-sensitive") {
		list.SetCaseSensitive(cfg.SearchCaseSensitive)
	}

	client, err := app.NewClient(cfg)
	if err != nil {
		return err
	}
	records, date, err := app.FetchRecords(cmd.Context(), client, app.Source(flags.source), cfg.RadarDate)
	if err != nil {
		return err
	}

	visible, count := list.Recompute(records)
	w := cmd.OutOrStdout()
	writeListTitle(w, date, count, len(records), list.FilterSummary())
	if count == 0 {
		fmt.Fprintln(w, color.New(color.Faint).Sprint("No trends match."))
		return nil
	}
	renderTrendTable(w, visible, app.Source(flags.source) == app.SourceItems)
	return nil
}

// buildListState validates the filter flags into a list state.
func buildListState(flags listFlags) (*radar.ListViewState, error) {
	if err := validateKey("focus", flags.focus, radar.FocusAreas()); err != nil {
		return nil, err
	}
	if err := validateKey("class", flags.class, radar.Classifications()); err != nil {
		return nil, err
	}
	switch app.Source(flags.source) {
	case app.SourceRadar, app.SourceItems:
	default:
		return nil, fmt.Errorf("invalid --source %q: want radar or items", flags.source)
	}

	list := radar.NewListViewState(flags.caseSensitive)
	list.SetSearchText(flags.search)
	list.SetFocusAreaFilter(flags.focus)
	list.SetClassificationFilter(flags.class)

	if flags.sort != "" {
		field, err := sortField(flags.sort)
		if err != nil {
			return nil, err
		}
		list.ToggleSort(field)
		if flags.reverse {
			list.ToggleSort(field)
		}
	} else if flags.reverse {
		return nil, fmt.Errorf("--reverse needs --sort")
	}
	return list, nil
}

func validateKey(flag, value string, allowed []string) error {
	if value == "" || value == radar.FilterAll || slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid --%s %q: want all, %s", flag, value, strings.Join(allowed, ", "))
}

func sortField(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "confidence", radar.FieldConfidence:
		return radar.FieldConfidence, nil
	case "name", "tool", radar.FieldToolName:
		return radar.FieldToolName, nil
	default:
		return "", fmt.Errorf("invalid --sort %q: want confidence or name", name)
	}
}

func writeListTitle(w io.Writer, date string, count, total int, summary string) {
	title := "Research Radar"
	if date != "" {
		title += " " + date
	}
	color.New(color.Bold).Fprintf(w, "%s: %d of %d trends\n", title, count, total)
	if summary != "" {
		fmt.Fprintln(w, color.New(color.Faint).Sprint(summary))
	}
}

// renderTrendTable prints one row per record. Backend ids are printed for
// the item store, where "radar show" can look them up; radar payloads get
// row numbers.
func renderTrendTable(w io.Writer, records []radar.TrendRecord, backendIDs bool) {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)

	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		ref := strconv.Itoa(i + 1)
		if backendIDs {
			ref = strconv.FormatInt(rec.ID, 10)
		}
		rows = append(rows, []string{
			ref,
			classColor(rec.Classification).Sprint(radar.ClassificationIcon(rec.Classification).Glyph()),
			rec.ToolName,
			radar.FocusAreaText(rec.FocusArea),
			classColor(rec.Classification).Sprint(strings.ToUpper(rec.Classification)),
			fmt.Sprintf("%d %s", rec.ConfidenceScore, radar.ConfidenceText(rec.ConfidenceScore)),
		})
	}

	first := "#"
	if backendIDs {
		first = "ID"
	}
	table.Header([]string{first, "", "Tool", "Focus Area", "Class", "Confidence"})
	_ = table.Bulk(rows)
	_ = table.Render()
}

func classColor(classification string) *color.Color {
	switch radar.ClassificationState(classification) {
	case radar.StatePositive:
		return color.New(color.FgGreen, color.Bold)
	case radar.StateNegative:
		return color.New(color.FgRed)
	default:
		return color.New(color.Faint)
	}
}
