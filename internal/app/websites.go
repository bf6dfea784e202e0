package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timesight/timesight/internal/config"
	"github.com/timesight/timesight/internal/output"
	"github.com/timesight/timesight/internal/report"
)

var websitesDays int

var websitesCmd = &cobra.Command{
	Use:   "websites",
	Short: "Show website usage from browser window titles",
	Long: `Aggregate time per website for browser activity. The website name is
recovered from the window title; titles that yield no usable name are
grouped under "Unknown". Which executables count as browsers is set in
the config file.`,
	RunE: runWebsites,
}

func init() {
	websitesCmd.Flags().IntVar(&websitesDays, "days", 7, "Number of days to report")
	rootCmd.AddCommand(websitesCmd)
}

// websitesOutput is the JSON-serializable output for the websites command.
type websitesOutput struct {
	Days     int                   `json:"days"`
	Websites []report.WebsiteUsage `json:"websites"`
}

func runWebsites(cmd *cobra.Command, args []string) error {
	return withGenerator(func(cfg *config.Config, gen *report.Generator) error {
		start, end := reportWindow(websitesDays)
		sites, err := gen.Websites(context.Background(), start, end)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(websitesOutput{Days: websitesDays, Websites: sites})
		}

		renderWebsites(sites)
		return nil
	})
}

func renderWebsites(sites []report.WebsiteUsage) {
	fmt.Println(output.Section("Website Usage"))

	if len(sites) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No browser activity recorded in this window"))
		return
	}

	var maxSeconds int64
	for _, s := range sites {
		if s.Seconds > maxSeconds {
			maxSeconds = s.Seconds
		}
	}

	fmt.Println()
	for _, s := range sites {
		name := s.Website
		if name == report.UnknownWebsite {
			name = output.StyleMuted.Render(name)
		}
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render(name),
			output.UsageBar(s.Seconds, maxSeconds, 24))
	}
	fmt.Println()
}
