package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviecat/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the statistics widget",
	Long: `Show the statistics widget as served by the server.

The source column tells where the numbers came from:
  live      fetched for this request
  cached    served from the cache
  stale     remote failed, expired cache served
  fallback  remote failed, built-in numbers served`,
	Args: cobra.NoArgs,
	RunE: runStatsCmd,
}

var statCmd = &cobra.Command{
	Use:   "stat <id>",
	Short: "Show a single statistic",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatCmd,
}

var statsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the server's statistics cache",
	Args:  cobra.NoArgs,
	RunE:  runStatsClearCmd,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(statCmd)
	statsCmd.AddCommand(statsClearCmd)
	statsCmd.Flags().String("category", "", "Only show statistics in this category")
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")

	client := NewClient(serverURL)
	resp, err := client.Statistics(category)
	if err != nil {
		return fmt.Errorf("statistics failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, resp)
	}

	printStatistics(out, resp)
	return nil
}

func runStatCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	st, err := client.Statistic(args[0])
	if err != nil {
		return fmt.Errorf("statistic failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, st)
	}

	fmt.Fprintf(out, "%s: %s\n", st.Title, stats.FormatValue(st.Value))
	if st.Description != "" {
		fmt.Fprintf(out, "  %s\n", st.Description)
	}
	if st.Category != "" {
		fmt.Fprintf(out, "  Category: %s\n", st.Category)
	}
	if change := changeLabel(*st); change != "" {
		fmt.Fprintf(out, "  Change:   %s\n", change)
	}
	if st.Date != "" {
		fmt.Fprintf(out, "  Date:     %s\n", st.Date)
	}
	return nil
}

func runStatsClearCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	if err := client.ClearStatistics(); err != nil {
		return fmt.Errorf("clear cache failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Statistics cache cleared.")
	return nil
}

func printStatistics(w io.Writer, resp *StatisticsResponse) {
	if len(resp.Statistics) == 0 {
		fmt.Fprintln(w, "No statistics.")
	} else {
		fmt.Fprintf(w, "%-6s  %-24s  %10s  %s\n", "ID", "TITLE", "VALUE", "CHANGE")
		printRule(w, 60)
		for _, st := range resp.Statistics {
			fmt.Fprintf(w, "%-6s  %-24s  %10s  %s\n",
				truncate(st.ID.String(), 6),
				truncate(st.Title, 24),
				stats.FormatValue(st.Value),
				changeLabel(st),
			)
		}
	}

	fmt.Fprintf(w, "\nSource: %s", resp.Source)
	if resp.FetchedAt != nil {
		fmt.Fprintf(w, " (fetched %s)", resp.FetchedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintln(w)
}

// changeLabel renders percentage and trend, e.g. "+12% up".
func changeLabel(st stats.Statistic) string {
	var label string
	if st.Percentage != nil {
		label = stats.FormatChange(*st.Percentage)
	}
	if st.Trend != "" {
		if label != "" {
			label += " "
		}
		label += string(st.Trend)
	}
	return label
}
