package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timesight/timesight/internal/config"
	"github.com/timesight/timesight/internal/interval"
	"github.com/timesight/timesight/internal/output"
	"github.com/timesight/timesight/internal/report"
)

var (
	reportDays        int
	reportGranularity string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show per-hour or per-day application usage",
	Long: `Compute application usage from the activity log, split across calendar
buckets. Idle periods recorded during an activity interval are subtracted
and reported under the reserved "Idle" label.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportDays, "days", 1, "Number of days to report")
	reportCmd.Flags().StringVar(&reportGranularity, "granularity", "hour", "Bucket size: hour or day")
	rootCmd.AddCommand(reportCmd)
}

// reportOutput is the JSON-serializable output for the report command.
type reportOutput struct {
	Days        int                  `json:"days"`
	Granularity string               `json:"granularity"`
	Usage       []report.BucketUsage `json:"usage"`
}

func runReport(cmd *cobra.Command, args []string) error {
	var gran interval.Granularity
	switch reportGranularity {
	case "hour":
		gran = interval.Hourly
	case "day":
		gran = interval.Daily
	default:
		return fmt.Errorf("unknown granularity %q (want hour or day)", reportGranularity)
	}

	return withGenerator(func(cfg *config.Config, gen *report.Generator) error {
		start, end := reportWindow(reportDays)
		usage, err := gen.Usage(context.Background(), start, end, gran)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(reportOutput{
				Days:        reportDays,
				Granularity: reportGranularity,
				Usage:       usage,
			})
		}

		renderUsage(usage, gran)
		return nil
	})
}

func renderUsage(usage []report.BucketUsage, gran interval.Granularity) {
	title := "Hourly Usage"
	if gran == interval.Daily {
		title = "Daily Usage"
	}
	fmt.Println(output.Section(title))

	if len(usage) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No activity recorded in this window"))
		return
	}

	tbl := output.NewTable("Bucket", "Application", "Time")
	for _, u := range usage {
		app := u.App
		if app == report.IdleLabel {
			app = output.StyleError.Render(app)
		}
		tbl.AddRow(u.Bucket, app, output.FormatDuration(u.Seconds))
	}
	fmt.Println()
	fmt.Print(tbl.Render())
	fmt.Println()
}
