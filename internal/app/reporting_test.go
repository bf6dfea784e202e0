package app

import (
	"testing"
	"time"
)

func TestReportWindow(t *testing.T) {
	start, end := reportWindow(7)

	if !end.After(start) {
		t.Fatalf("window [%v, %v) is not ordered", start, end)
	}
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("start = %v, want local midnight", start)
	}

	// Seven days covers today plus six earlier midnights.
	y, m, d := time.Now().AddDate(0, 0, -6).Date()
	wy, wm, wd := start.Date()
	if wy != y || wm != m || wd != d {
		t.Errorf("start date = %v, want six days back", start)
	}
}

func TestReportWindow_ClampsToOneDay(t *testing.T) {
	start, end := reportWindow(0)
	if start.After(end) {
		t.Fatalf("window [%v, %v) is not ordered", start, end)
	}
	y1, m1, d1 := start.Date()
	y2, m2, d2 := time.Now().Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		t.Errorf("start date = %v, want today", start)
	}
}
