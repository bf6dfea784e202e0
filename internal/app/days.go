package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timesight/timesight/internal/config"
	"github.com/timesight/timesight/internal/output"
	"github.com/timesight/timesight/internal/report"
)

var daysBack int

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Show per-day activity with category labels",
	Long: `List each day in the window with its total active time, input metrics,
and a category label based on the configured thresholds.`,
	RunE: runDays,
}

func init() {
	daysCmd.Flags().IntVar(&daysBack, "days", 7, "Number of days to report")
	rootCmd.AddCommand(daysCmd)
}

// daysOutput is the JSON-serializable output for the days command.
type daysOutput struct {
	Days       int                    `json:"days"`
	Categories []report.DailyActivity `json:"categories"`
	Summaries  []report.DailySummary  `json:"summaries"`
}

func runDays(cmd *cobra.Command, args []string) error {
	return withGenerator(func(cfg *config.Config, gen *report.Generator) error {
		start, end := reportWindow(daysBack)
		ctx := context.Background()

		categories, err := gen.DailyCategories(ctx, start, end)
		if err != nil {
			return err
		}
		summaries, err := gen.Summaries(ctx, start, end)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(daysOutput{Days: daysBack, Categories: categories, Summaries: summaries})
		}

		renderDays(categories, summaries)
		return nil
	})
}

func renderDays(categories []report.DailyActivity, summaries []report.DailySummary) {
	fmt.Println(output.Section("Daily Activity"))

	if len(summaries) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No activity recorded in this window"))
		return
	}

	categoryByDate := make(map[string]report.DayCategory, len(categories))
	for _, c := range categories {
		categoryByDate[c.Date] = c.Category
	}

	tbl := output.NewTable("Date", "Active", "Keystrokes", "Clicks", "Category")
	for _, s := range summaries {
		category, ok := categoryByDate[s.Date]
		if !ok {
			category = report.CategoryIdle
		}
		tbl.AddRow(
			s.Date,
			output.FormatDuration(s.ActiveSeconds),
			output.FormatCount(s.TotalKeystrokes),
			output.FormatCount(s.TotalClicks),
			output.CategoryBadge(string(category)),
		)
	}
	fmt.Println()
	fmt.Print(tbl.Render())
	fmt.Println()
}
