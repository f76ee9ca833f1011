package internal

import "testing"

func TestColToLetter(t *testing.T) {
	cases := []struct {
		col  int
		want string
	}{
		{1, "A"}, {2, "B"}, {26, "Z"}, {27, "AA"}, {52, "AZ"}, {53, "BA"}, {702, "ZZ"}, {703, "AAA"},
	}
	for _, tc := range cases {
		if got := ColToLetter(tc.col); got != tc.want {
			t.Fatalf("ColToLetter(%d) = %q, want %q", tc.col, got, tc.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
	}
	for _, tc := range cases {
		if got := FormatBytes(tc.n); got != tc.want {
			t.Fatalf("FormatBytes(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
