package output

import (
	"fmt"
	"strings"
)

// UsageBar renders a proportional bar for a value against a maximum.
// Example: "████████░░░░░░░░░░░░ 2h 15m"
func UsageBar(seconds, maxSeconds int64, width int) string {
	if width <= 0 {
		width = 20
	}
	var filled int
	if maxSeconds > 0 {
		filled = int(float64(seconds) / float64(maxSeconds) * float64(width))
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", StyleSuccess.Render(bar), StyleMuted.Render(FormatDuration(seconds)))
}

// HeatCell renders a single heatmap cell scaled by intensity against a maximum.
func HeatCell(seconds, maxSeconds int64) string {
	shades := []string{"·", "░", "▒", "▓", "█"}
	if seconds <= 0 || maxSeconds <= 0 {
		return StyleMuted.Render(shades[0])
	}
	idx := int(float64(seconds) / float64(maxSeconds) * float64(len(shades)-1))
	if idx >= len(shades) {
		idx = len(shades) - 1
	}
	if idx < 1 {
		idx = 1
	}
	return StyleSuccess.Render(shades[idx])
}

// CategoryBadge returns a styled label for a day category.
func CategoryBadge(category string) string {
	switch category {
	case "productive":
		return StyleSuccess.Render(category)
	case "neutral":
		return StyleWarning.Render(category)
	default:
		return StyleError.Render(category)
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
