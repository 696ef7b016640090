package datecalc

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalize(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	in := time.Date(2025, 3, 10, 23, 45, 12, 999, loc)
	got := Normalize(in)
	want := date(2025, 3, 10)
	if !got.Equal(want) {
		t.Errorf("Normalize(%v) = %v, want %v", in, got, want)
	}
}

func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", date(2025, 1, 1), date(2025, 1, 1), 1},
		{"one week", date(2025, 1, 1), date(2025, 1, 7), 7},
		{"month boundary", date(2025, 1, 30), date(2025, 2, 2), 4},
		{"leap february", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"inverted range clamps to zero", date(2025, 1, 7), date(2025, 1, 1), 0},
		{"dst transition day", date(2025, 3, 30), date(2025, 3, 31), 2},
	}
	for _, c := range cases {
		got := DaysInclusive(c.start, c.end)
		if got != c.want {
			t.Errorf("%s: DaysInclusive(%v, %v) = %d, want %d", c.name, c.start, c.end, got, c.want)
		}
	}
}

func TestDaysInclusiveIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 2, 1, 0, 0, 0, time.UTC)
	if got := DaysInclusive(start, end); got != 2 {
		t.Errorf("DaysInclusive across midnight = %d, want 2", got)
	}
}

func TestWorkingDays(t *testing.T) {
	// 2025-01-06 is a Monday.
	monday := date(2025, 1, 6)
	sunday := date(2025, 1, 12)

	cases := []struct {
		name       string
		start, end time.Time
		holidays   []time.Time
		want       int
	}{
		{"full week no holidays", monday, sunday, nil, 5},
		{"weekday holiday excluded", monday, sunday, []time.Time{date(2025, 1, 8)}, 4},
		{"weekend holiday changes nothing", monday, sunday, []time.Time{date(2025, 1, 11)}, 5},
		{"single weekend day", date(2025, 1, 11), date(2025, 1, 11), nil, 0},
		{"inverted range", sunday, monday, nil, 0},
		{"all days are holidays", monday, date(2025, 1, 10), []time.Time{
			date(2025, 1, 6), date(2025, 1, 7), date(2025, 1, 8), date(2025, 1, 9), date(2025, 1, 10),
		}, 0},
	}
	for _, c := range cases {
		got := WorkingDays(c.start, c.end, NewHolidaySet(c.holidays))
		if got != c.want {
			t.Errorf("%s: WorkingDays = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestWorkingDaysMatchesHolidayRegardlessOfTime(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	holiday := time.Date(2025, 1, 8, 18, 30, 0, 0, loc)
	got := WorkingDays(date(2025, 1, 6), date(2025, 1, 10), NewHolidaySet([]time.Time{holiday}))
	if got != 4 {
		t.Errorf("WorkingDays with offset holiday = %d, want 4", got)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint", date(2025, 1, 1), date(2025, 1, 5), date(2025, 1, 10), date(2025, 1, 15), false},
		{"contained", date(2025, 1, 1), date(2025, 1, 31), date(2025, 1, 10), date(2025, 1, 15), true},
		{"partial", date(2025, 1, 1), date(2025, 1, 12), date(2025, 1, 10), date(2025, 1, 15), true},
		{"touching endpoints", date(2025, 1, 1), date(2025, 1, 5), date(2025, 1, 5), date(2025, 1, 10), true},
		{"identical", date(2025, 1, 1), date(2025, 1, 5), date(2025, 1, 1), date(2025, 1, 5), true},
		{"adjacent days do not touch", date(2025, 1, 1), date(2025, 1, 4), date(2025, 1, 5), date(2025, 1, 10), false},
	}
	for _, c := range cases {
		got := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd)
		if got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
		// The predicate is symmetric in its two ranges.
		sym := Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd)
		if sym != got {
			t.Errorf("%s: Overlaps not symmetric: %v vs %v", c.name, got, sym)
		}
	}
}

func TestClip(t *testing.T) {
	winStart := date(2020, 7, 15)
	winEnd := date(2025, 7, 15)

	start, end := Clip(date(2019, 1, 1), date(2021, 1, 1), winStart, winEnd)
	if !start.Equal(winStart) || !end.Equal(date(2021, 1, 1)) {
		t.Errorf("Clip leading overhang = [%v, %v]", start, end)
	}

	start, end = Clip(date(2023, 3, 29), date(2025, 7, 15), winStart, winEnd)
	if !start.Equal(date(2023, 3, 29)) || !end.Equal(winEnd) {
		t.Errorf("Clip inside window = [%v, %v]", start, end)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Equal(date(2025, 6, 1)) {
		t.Errorf("ParseDate = %v, want %v", got, date(2025, 6, 1))
	}

	for _, bad := range []string{"", "2025-6-1", "06/01/2025", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}
