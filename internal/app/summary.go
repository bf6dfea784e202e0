package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timesight/timesight/internal/config"
	"github.com/timesight/timesight/internal/output"
	"github.com/timesight/timesight/internal/report"
)

var summaryDays int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals, top apps, and idle distribution",
	Long: `Summarize the window: total active time, keystrokes, activity interval
counts, the top applications by time, and when idle time tends to happen
across the hours of the day.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&summaryDays, "days", 1, "Number of days to summarize")
	rootCmd.AddCommand(summaryCmd)
}

// summaryOutput is the JSON-serializable output for the summary command.
type summaryOutput struct {
	Days  int                 `json:"days"`
	Stats report.Stats        `json:"stats"`
	Idle  []report.IdleBucket `json:"idle_by_hour"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	return withGenerator(func(cfg *config.Config, gen *report.Generator) error {
		start, end := reportWindow(summaryDays)
		ctx := context.Background()

		stats, err := gen.Stats(ctx, start, end)
		if err != nil {
			return err
		}
		idle, err := gen.IdleByHour(ctx, start, end)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(summaryOutput{Days: summaryDays, Stats: stats, Idle: idle})
		}

		renderStats(stats)
		renderIdleByHour(idle)
		return nil
	})
}

func renderStats(s report.Stats) {
	fmt.Println(output.Section("Summary"))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Active time"),
		output.StyleValue.Render(output.FormatDuration(s.TotalActiveSeconds)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Keystrokes"),
		output.StyleValue.Render(output.FormatCount(s.TotalKeystrokes)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Activity intervals"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.SessionCount)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg interval length"),
		output.StyleValue.Render(output.FormatDuration(s.AverageSessionSeconds)))

	if len(s.TopApps) > 0 {
		fmt.Printf("\n %s\n", output.StyleMuted.Render("Top applications:"))
		maxSeconds := s.TopApps[0].Seconds
		for _, a := range s.TopApps {
			fmt.Printf("   %s %s\n",
				output.StyleLabel.Render(a.App),
				output.UsageBar(a.Seconds, maxSeconds, 20))
		}
	}

	fmt.Println()
}

func renderIdleByHour(idle []report.IdleBucket) {
	var maxIdle int64
	var any bool
	for _, b := range idle {
		if b.TotalIdleSeconds > maxIdle {
			maxIdle = b.TotalIdleSeconds
		}
		if b.TotalIdleSeconds > 0 || b.Occurrences > 0 {
			any = true
		}
	}
	if !any {
		return
	}

	fmt.Println(output.Section("Idle by Hour"))
	fmt.Println()
	for _, b := range idle {
		if b.TotalIdleSeconds == 0 && b.Occurrences == 0 {
			continue
		}
		label := fmt.Sprintf("%02d:00", b.HourOfDay)
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render(label),
			output.UsageBar(b.TotalIdleSeconds, maxIdle, 20),
			output.StyleMuted.Render(fmt.Sprintf("(%d period(s))", b.Occurrences)))
	}
	fmt.Println()
}
