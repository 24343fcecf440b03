package utils

import (
	"testing"
	"time"
)

func TestParseEpoch(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"1514764800", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"1514764800.0", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{" 1514764800 ", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"not-a-number", time.Time{}, false},
	}
	for _, tt := range tests {
		got, err := ParseEpoch(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseEpoch(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && !got.Equal(tt.want) {
			t.Errorf("ParseEpoch(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2018-01-01")
	if err != nil {
		t.Fatalf("ParseDay error: %v", err)
	}
	if got.Year() != 2018 || got.Month() != time.January || got.Day() != 1 {
		t.Errorf("ParseDay = %v", got)
	}
	if _, err := ParseDay("01/01/2018"); err == nil {
		t.Error("ParseDay should reject non-ISO dates")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2018, 1, 1, 0, 0, 1, 0, time.UTC)
	b := time.Date(2018, 1, 1, 23, 59, 59, 0, time.UTC)
	c := time.Date(2018, 1, 2, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("same UTC day should match")
	}
	if SameDay(a, c) {
		t.Error("different UTC days should not match")
	}
	// A local-zone time is compared by its UTC day.
	loc := time.FixedZone("early", 5*3600)
	d := time.Date(2018, 1, 2, 1, 0, 0, 0, loc) // 2018-01-01 20:00 UTC
	if !SameDay(a, d) {
		t.Error("comparison should use the UTC calendar day")
	}
}
