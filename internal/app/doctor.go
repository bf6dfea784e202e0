package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/timesight/timesight/internal/config"
	"github.com/timesight/timesight/internal/output"
	"github.com/timesight/timesight/internal/store"
	"github.com/timesight/timesight/internal/tracker"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the timesight setup is healthy",
	Long: `Run a series of health checks against your timesight configuration and
activity database. Prints a pass/fail line for each check and a summary
of how many checks passed.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		output.SetNoColor(true)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var checks []doctorCheck

	checks = append(checks, checkDatabaseFile(cfg.DBPath))
	checks = append(checks, checkDatabaseRows(cfg.DBPath)...)
	checks = append(checks, checkPlatformSampler())
	checks = append(checks, checkTrackerSettings(cfg))

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	if flagJSON {
		return printJSON(doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		})
	}

	fmt.Println(output.Section("Doctor"))
	fmt.Println()

	for _, c := range checks {
		renderDoctorCheck(c)
	}

	fmt.Println()
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Printf(" %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Printf(" %s\n\n", output.StyleWarning.Render(summary))
	}

	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Printf("  %s  %-30s %s\n", indicator, label, detail)
}

// checkDatabaseFile verifies that the database file exists.
func checkDatabaseFile(dbPath string) doctorCheck {
	if _, err := os.Stat(dbPath); err != nil {
		return doctorCheck{
			Name:    "Database file",
			Passed:  false,
			Message: fmt.Sprintf("not found at %s (run 'timesight track' to create)", dbPath),
		}
	}
	return doctorCheck{
		Name:    "Database file",
		Passed:  true,
		Message: dbPath,
	}
}

// checkDatabaseRows opens the database and reports per-table row counts.
func checkDatabaseRows(dbPath string) []doctorCheck {
	db, err := store.Open(dbPath)
	if err != nil {
		return []doctorCheck{{
			Name:    "Database open",
			Passed:  false,
			Message: fmt.Sprintf("cannot open: %v", err),
		}}
	}
	defer db.Close()

	checks := []doctorCheck{{
		Name:    "Database open",
		Passed:  true,
		Message: "readable",
	}}

	for _, table := range []string{"activity_log", "input_metrics", "idle_periods"} {
		var count int64
		row := db.Conn().QueryRow("SELECT COUNT(*) FROM " + table)
		if err := row.Scan(&count); err != nil {
			checks = append(checks, doctorCheck{
				Name:    fmt.Sprintf("Table: %s", table),
				Passed:  false,
				Message: fmt.Sprintf("query failed: %v", err),
			})
			continue
		}
		checks = append(checks, doctorCheck{
			Name:    fmt.Sprintf("Table: %s", table),
			Passed:  true,
			Message: fmt.Sprintf("%d rows", count),
		})
	}
	return checks
}

// checkPlatformSampler reports whether this build can capture activity.
func checkPlatformSampler() doctorCheck {
	if _, err := tracker.NewPlatformSampler(); err != nil {
		return doctorCheck{
			Name:    "Platform sampler",
			Passed:  false,
			Message: err.Error(),
		}
	}
	return doctorCheck{
		Name:    "Platform sampler",
		Passed:  true,
		Message: "available",
	}
}

// checkTrackerSettings flags tracker settings that cannot work together.
func checkTrackerSettings(cfg *config.Config) doctorCheck {
	if cfg.Tracker.PollSeconds <= 0 || cfg.Tracker.FlushSeconds <= 0 || cfg.Tracker.IdleThresholdSeconds <= 0 {
		return doctorCheck{
			Name:    "Tracker settings",
			Passed:  false,
			Message: "poll, flush, and idle threshold must all be positive",
		}
	}
	if cfg.Tracker.IdleThresholdSeconds <= cfg.Tracker.PollSeconds {
		return doctorCheck{
			Name:    "Tracker settings",
			Passed:  false,
			Message: "idle threshold must exceed the poll interval",
		}
	}
	return doctorCheck{
		Name:   "Tracker settings",
		Passed: true,
		Message: fmt.Sprintf("poll %ds, flush %ds, idle threshold %ds",
			cfg.Tracker.PollSeconds, cfg.Tracker.FlushSeconds, cfg.Tracker.IdleThresholdSeconds),
	}
}
