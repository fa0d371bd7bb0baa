package epoch

import (
	"errors"
	"math"
	"testing"
)

func TestApply_FixedSeconds(t *testing.T) {
	tests := []struct {
		epoch int64
		d     Duration
		want  int64
	}{
		{0, Seconds(3600), 3600},
		{1704888000, Seconds(-86400), 1704801600},
		{0, Seconds(0), 0},
		{-100, Seconds(50), -50},
		{math.MaxInt64 - 1, Seconds(1), math.MaxInt64},
		{math.MinInt64 + 1, Seconds(-1), math.MinInt64},
	}
	for _, tt := range tests {
		got, err := Apply(tt.epoch, tt.d)
		if err != nil {
			t.Errorf("Apply(%d, %+v): unexpected error: %v", tt.epoch, tt.d, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Apply(%d, %+v) = %d, want %d", tt.epoch, tt.d, got, tt.want)
		}
	}
}

func TestApply_FixedOverflow(t *testing.T) {
	// Overflow is reported, never wrapped
	if _, err := Apply(math.MaxInt64, Seconds(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("MaxInt64 + 1s: got %v, want ErrOverflow", err)
	}
	if _, err := Apply(math.MinInt64, Seconds(-1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("MinInt64 - 1s: got %v, want ErrOverflow", err)
	}
}

// applyISO shifts an ISO timestamp and formats the result, so the
// calendar cases read as timestamps instead of raw epochs.
func applyISO(t *testing.T, iso string, d Duration) string {
	t.Helper()
	e, err := ParseISO(iso)
	if err != nil {
		t.Fatalf("ParseISO(%q): %v", iso, err)
	}
	shifted, err := Apply(e, d)
	if err != nil {
		t.Fatalf("Apply(%q, %+v): %v", iso, d, err)
	}
	out, err := FormatISO(shifted)
	if err != nil {
		t.Fatalf("FormatISO(%d): %v", shifted, err)
	}
	return out
}

func TestApply_Months(t *testing.T) {
	tests := []struct {
		iso    string
		months int32
		want   string
	}{
		{"2023-06-15T12:00:00Z", 1, "2023-07-15T12:00:00Z"},
		{"2023-06-15T12:00:00Z", -1, "2023-05-15T12:00:00Z"},
		{"2023-12-15T08:30:00Z", 1, "2024-01-15T08:30:00Z"},
		{"2024-01-15T08:30:00Z", -1, "2023-12-15T08:30:00Z"},
		// Day clamping
		{"2023-01-31T12:00:00Z", 1, "2023-02-28T12:00:00Z"},
		{"2024-01-31T12:00:00Z", 1, "2024-02-29T12:00:00Z"},
		{"2023-03-31T12:00:00Z", 1, "2023-04-30T12:00:00Z"},
		{"2023-03-31T12:00:00Z", -1, "2023-02-28T12:00:00Z"},
		// Time of day is preserved exactly
		{"2023-01-31T23:59:59Z", 1, "2023-02-28T23:59:59Z"},
	}
	for _, tt := range tests {
		if got := applyISO(t, tt.iso, Months(tt.months)); got != tt.want {
			t.Errorf("%s %+dM = %s, want %s", tt.iso, tt.months, got, tt.want)
		}
	}
}

func TestApply_Years(t *testing.T) {
	tests := []struct {
		iso   string
		years int32
		want  string
	}{
		{"2023-06-15T12:00:00Z", 1, "2024-06-15T12:00:00Z"},
		{"2023-06-15T12:00:00Z", -23, "2000-06-15T12:00:00Z"},
		{"2024-02-29T06:00:00Z", 1, "2025-02-28T06:00:00Z"},
		{"2024-02-29T06:00:00Z", 4, "2028-02-29T06:00:00Z"},
		// 2100 is a century and not a leap year
		{"2096-02-29T12:00:00Z", 4, "2100-02-28T12:00:00Z"},
		{"1996-02-29T12:00:00Z", 4, "2000-02-29T12:00:00Z"},
	}
	for _, tt := range tests {
		if got := applyISO(t, tt.iso, Years(tt.years)); got != tt.want {
			t.Errorf("%s %+dY = %s, want %s", tt.iso, tt.years, got, tt.want)
		}
	}
}

func TestApply_CalendarRoundTrip(t *testing.T) {
	// Adding then subtracting the same calendar count returns the
	// original epoch whenever no clamping occurred.
	e, err := ParseISO("2023-06-15T09:26:53Z")
	if err != nil {
		t.Fatalf("ParseISO: %v", err)
	}
	for _, n := range []int32{1, 7, 12, 25, 100} {
		fwd, err := Apply(e, Months(n))
		if err != nil {
			t.Fatalf("Apply(+%dM): %v", n, err)
		}
		back, err := Apply(fwd, Months(-n))
		if err != nil {
			t.Fatalf("Apply(-%dM): %v", n, err)
		}
		if back != e {
			t.Errorf("+%dM then -%dM: %d != %d", n, n, back, e)
		}
	}
	for _, n := range []int32{1, 4, 50} {
		fwd, err := Apply(e, Years(n))
		if err != nil {
			t.Fatalf("Apply(+%dY): %v", n, err)
		}
		back, err := Apply(fwd, Years(-n))
		if err != nil {
			t.Fatalf("Apply(-%dY): %v", n, err)
		}
		if back != e {
			t.Errorf("+%dY then -%dY: %d != %d", n, n, back, e)
		}
	}
}

func TestApply_CalendarErrors(t *testing.T) {
	// Calendar arithmetic past the civil year range overflows
	if _, err := Apply(maxEpoch, Months(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("maxEpoch + 1M: got %v, want ErrOverflow", err)
	}
	if _, err := Apply(maxEpoch, Years(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("maxEpoch + 1Y: got %v, want ErrOverflow", err)
	}
	if _, err := Apply(minEpoch, Years(-1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("minEpoch - 1Y: got %v, want ErrOverflow", err)
	}

	// Epochs outside the civil range cannot be decoded at all
	if _, err := Apply(math.MaxInt64, Months(1)); !errors.Is(err, ErrInvalidEpoch) {
		t.Errorf("MaxInt64 + 1M: got %v, want ErrInvalidEpoch", err)
	}
}

func TestApply_NegativeEpoch(t *testing.T) {
	// 1969-12-31T00:00:00Z plus one month lands on 1970-01-31
	got, err := Apply(-86400, Months(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	iso, err := FormatISO(got)
	if err != nil {
		t.Fatalf("FormatISO: %v", err)
	}
	if iso != "1970-01-31T00:00:00Z" {
		t.Errorf("got %s, want 1970-01-31T00:00:00Z", iso)
	}
}
