package snapshot

import (
	"testing"
	"time"
)

func TestQuarterOf(t *testing.T) {
	cases := []struct {
		month   time.Month
		quarter int
	}{
		{time.January, 1}, {time.February, 1}, {time.March, 1},
		{time.April, 2}, {time.May, 2}, {time.June, 2},
		{time.July, 3}, {time.August, 3}, {time.September, 3},
		{time.October, 4}, {time.November, 4}, {time.December, 4},
	}
	for _, tc := range cases {
		when := time.Date(2024, tc.month, 15, 12, 0, 0, 0, time.UTC)
		year, quarter := QuarterOf(when)
		if year != 2024 || quarter != tc.quarter {
			t.Fatalf("QuarterOf(%s) = %d, %d; want 2024, %d", tc.month, year, quarter, tc.quarter)
		}
	}
}

func TestQuarterLabel(t *testing.T) {
	if got := QuarterLabel(2024, 3); got != "2024Q3" {
		t.Fatalf("QuarterLabel = %q, want 2024Q3", got)
	}
	if got := QuarterLabel(1999, 1); got != "1999Q1" {
		t.Fatalf("QuarterLabel = %q, want 1999Q1", got)
	}
}
