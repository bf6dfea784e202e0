// Package app contains the Cobra command tree for timesight.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "timesight",
	Short: "Desktop time tracking and usage reports",
	Long: `timesight records foreground window activity, input metrics, and idle
periods into a local SQLite database, and turns the raw log into
calendar-aligned usage reports.

Run 'timesight track' to start recording, then use the report commands:`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("timesight", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  track     Record foreground activity into the local database")
		fmt.Println("  report    Show per-hour or per-day application usage")
		fmt.Println("  summary   Show totals, top apps, and idle distribution")
		fmt.Println("  days      Show per-day activity with category labels")
		fmt.Println("  sessions  Show detected focus sessions")
		fmt.Println("  websites  Show website usage from browser window titles")
		fmt.Println("  heatmap   Show a day-by-hour activity heatmap")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.timesight/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
