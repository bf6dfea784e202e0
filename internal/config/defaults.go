// Package config provides configuration loading and defaults for timesight.
package config

// DefaultConfigDir is the directory searched for a config file.
const DefaultConfigDir = "~/.timesight"

// DefaultDBPath is where the activity database lives.
const DefaultDBPath = "~/.timesight/timesight.db"

// DefaultBrowsers are the executables whose window titles are treated as
// web pages when aggregating website usage.
var DefaultBrowsers = []string{
	"chrome.exe",
	"firefox.exe",
	"msedge.exe",
	"brave.exe",
	"opera.exe",
}

// DefaultFocus holds the focus-session detector defaults.
var DefaultFocus = Focus{
	MaxGapSeconds:     300,
	MinSessionSeconds: 600,
}

// DefaultCategories holds the day-classification cutoffs.
var DefaultCategories = Categories{
	ProductiveSeconds: 4 * 3600,
	NeutralSeconds:    2 * 3600,
}

// DefaultTracker holds the capture loop defaults.
var DefaultTracker = Tracker{
	PollSeconds:          1,
	FlushSeconds:         60,
	IdleThresholdSeconds: 180,
}

// DefaultOutput holds the output defaults.
var DefaultOutput = Output{
	Color: true,
	Width: 100,
}
