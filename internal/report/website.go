package report

import (
	"sort"
	"strings"

	"github.com/timesight/timesight/internal/store"
)

// UnknownWebsite is the sentinel label for titles that normalize to
// nothing.
const UnknownWebsite = "Unknown"

// websiteLimit caps the website activity report.
const websiteLimit = 20

// browserSuffixes are trailing window-title decorations added by the
// browsers we recognize.
var browserSuffixes = []string{
	" - Google Chrome",
	" - Mozilla Firefox",
	" - Microsoft Edge",
	" - Microsoft​ Edge",
	" - Chromium",
	" - Brave",
}

// NormalizeWebsite extracts a canonical website label from a browser
// window title. This is a best-effort heuristic over title conventions,
// not a URL parser: unrelated titles sharing a suffix can be grouped
// together, and downstream views depend on the heuristic's exact
// behavior, so keep changes to it deliberate.
//
// Callers apply it only to rows whose app is a recognized browser; titles
// from other applications are excluded entirely rather than normalized.
func NormalizeWebsite(windowTitle string) string {
	title := windowTitle
	for _, suffix := range browserSuffixes {
		if strings.HasSuffix(title, suffix) {
			title = strings.TrimSuffix(title, suffix)
			break
		}
	}

	// Sites commonly put their own name after the last separator.
	switch {
	case strings.Contains(title, " | "):
		title = title[strings.LastIndex(title, " | ")+len(" | "):]
	case strings.Contains(title, " - "):
		title = title[strings.LastIndex(title, " - ")+len(" - "):]
	case strings.HasSuffix(title, ")"):
		if open := strings.LastIndex(title, "("); open >= 0 {
			title = title[open+1 : len(title)-1]
		}
	}

	title = strings.TrimPrefix(title, "https://")
	title = strings.TrimPrefix(title, "http://")
	title = strings.TrimPrefix(title, "www.")
	if slash := strings.Index(title, "/"); slash >= 0 {
		title = title[:slash]
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return UnknownWebsite
	}
	return title
}

// WebsiteUsage is total time attributed to one website label.
type WebsiteUsage struct {
	Website string `json:"website"`
	Seconds int64  `json:"seconds"`
}

// AggregateWebsites sums browser activity by normalized website label and
// returns the top entries, descending by time. Only rows whose app is in
// the browser set contribute; everything else carries no website signal.
func AggregateWebsites(activity []store.ActivityInterval, browsers map[string]bool) []WebsiteUsage {
	totals := make(map[string]int64)
	for _, a := range activity {
		if a.Duration <= 0 || !browsers[strings.ToLower(a.App)] {
			continue
		}
		totals[NormalizeWebsite(a.WindowTitle)] += int64(a.Duration.Seconds())
	}

	usage := make([]WebsiteUsage, 0, len(totals))
	for site, secs := range totals {
		usage = append(usage, WebsiteUsage{Website: site, Seconds: secs})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Seconds != usage[j].Seconds {
			return usage[i].Seconds > usage[j].Seconds
		}
		return usage[i].Website < usage[j].Website
	})
	if len(usage) > websiteLimit {
		usage = usage[:websiteLimit]
	}
	return usage
}

// BrowserSet lowercases a configured browser executable list into the
// membership set AggregateWebsites expects.
func BrowserSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = true
	}
	return set
}
