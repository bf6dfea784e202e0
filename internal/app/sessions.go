package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timesight/timesight/internal/config"
	"github.com/timesight/timesight/internal/output"
	"github.com/timesight/timesight/internal/report"
)

var (
	sessionsDays   int
	sessionsMaxGap int
	sessionsMinLen int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show detected focus sessions",
	Long: `Detect sustained input activity in the input metrics log. Consecutive
samples closer together than the gap limit merge into one session; sessions
shorter than the minimum length are dropped.`,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&sessionsDays, "days", 1, "Number of days to scan")
	sessionsCmd.Flags().IntVar(&sessionsMaxGap, "max-gap", 0, "Gap limit in seconds (default from config)")
	sessionsCmd.Flags().IntVar(&sessionsMinLen, "min-length", 0, "Minimum session length in seconds (default from config)")
	rootCmd.AddCommand(sessionsCmd)
}

// sessionsOutput is the JSON-serializable output for the sessions command.
type sessionsOutput struct {
	Days     int                   `json:"days"`
	Sessions []report.FocusSession `json:"sessions"`
}

func runSessions(cmd *cobra.Command, args []string) error {
	return withGenerator(func(cfg *config.Config, gen *report.Generator) error {
		start, end := reportWindow(sessionsDays)
		sessions, err := gen.FocusSessions(context.Background(), start, end)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(sessionsOutput{Days: sessionsDays, Sessions: sessions})
		}

		renderSessions(sessions)
		return nil
	}, func(cfg *config.Config) {
		if sessionsMaxGap > 0 {
			cfg.Focus.MaxGapSeconds = sessionsMaxGap
		}
		if sessionsMinLen > 0 {
			cfg.Focus.MinSessionSeconds = sessionsMinLen
		}
	})
}

func renderSessions(sessions []report.FocusSession) {
	fmt.Println(output.Section("Focus Sessions"))

	if len(sessions) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No focus sessions detected in this window"))
		return
	}

	tbl := output.NewTable("Start", "End", "Length", "Keystrokes", "Applications")
	for _, s := range sessions {
		tbl.AddRow(
			s.StartTime.Format("2006-01-02 15:04"),
			s.EndTime.Format("15:04"),
			output.FormatDuration(s.DurationSeconds),
			output.FormatCount(s.Keystrokes),
			strings.Join(s.Apps, ", "),
		)
	}
	fmt.Println()
	fmt.Print(tbl.Render())
	fmt.Println()
}
