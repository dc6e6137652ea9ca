package main

import (
	"github.com/spf13/cobra"

	"github.com/codescale/radar/internal/app"
)

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "radar",
		Short: "Terminal dashboard for AI tool trend signals",
		Long: `radar shows the daily Research Radar: AI tools classified as signal or
noise per focus area, with confidence scores and evidence.

Example usage:
  radar                          # open the dashboard on the latest radar
  radar --date 2026-01-30        # open a specific radar
  radar --view dataTable         # start in the data table
  radar list --class signal      # print signals as a table
  radar show 42                  # print one stored trend`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/radar/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.RadarDate, "date", "", "radar date YYYY-MM-DD (default latest)")
	cmd.Flags().IntVar(&opts.PollEvery, "poll", 0, "refresh interval in seconds (default from config, 30s)")
	cmd.Flags().StringVar(&opts.View, "view", "", "initial view: main, dataTable, trendDetail/N, voiceai, agentorch, durableruntime, settings")

	cmd.AddCommand(newListCmd(&opts), newShowCmd(&opts), newVersionCmd())
	return cmd
}
