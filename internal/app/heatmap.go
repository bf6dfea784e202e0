package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timesight/timesight/internal/config"
	"github.com/timesight/timesight/internal/output"
	"github.com/timesight/timesight/internal/report"
)

var heatmapDays int

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show a day-by-hour activity heatmap",
	Long: `Render active (non-idle) time per day and hour as a shaded grid. Each
cell's intensity is scaled against the busiest hour in the window.`,
	RunE: runHeatmap,
}

func init() {
	heatmapCmd.Flags().IntVar(&heatmapDays, "days", 7, "Number of days to report")
	rootCmd.AddCommand(heatmapCmd)
}

// heatmapOutput is the JSON-serializable output for the heatmap command.
type heatmapOutput struct {
	Days  int                  `json:"days"`
	Cells []report.HeatmapCell `json:"cells"`
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	return withGenerator(func(cfg *config.Config, gen *report.Generator) error {
		start, end := reportWindow(heatmapDays)
		cells, err := gen.Heatmap(context.Background(), start, end)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(heatmapOutput{Days: heatmapDays, Cells: cells})
		}

		renderHeatmap(cells)
		return nil
	})
}

func renderHeatmap(cells []report.HeatmapCell) {
	fmt.Println(output.Section("Activity Heatmap"))

	if len(cells) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No activity recorded in this window"))
		return
	}

	// Index cells by day, track the scale.
	byDay := make(map[string][24]int64)
	var maxScore int64
	for _, c := range cells {
		row := byDay[c.Day]
		row[c.Hour] = c.ActivityScore
		byDay[c.Day] = row
		if c.ActivityScore > maxScore {
			maxScore = c.ActivityScore
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	// Hour ruler.
	var ruler strings.Builder
	ruler.WriteString(strings.Repeat(" ", 25))
	for h := 0; h < 24; h += 3 {
		ruler.WriteString(fmt.Sprintf("%-3d", h))
	}
	fmt.Println()
	fmt.Printf(" %s\n", output.StyleMuted.Render(ruler.String()))

	for _, day := range days {
		row := byDay[day]
		var sb strings.Builder
		for h := 0; h < 24; h++ {
			sb.WriteString(output.HeatCell(row[h], maxScore))
		}
		fmt.Printf(" %s %s\n", output.StyleLabel.Render(day), sb.String())
	}
	fmt.Println()
}
