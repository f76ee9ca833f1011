package snapshot

import (
	"fmt"
	"time"
)

// QuarterOf derives the reporting year and calendar quarter (1–4) from a
// wall-clock instant.
func QuarterOf(t time.Time) (year, quarter int) {
	return t.Year(), (int(t.Month()) + 2) / 3
}

// QuarterLabel formats a year/quarter pair, e.g. "2024Q3".
func QuarterLabel(year, quarter int) string {
	return fmt.Sprintf("%dQ%d", year, quarter)
}
