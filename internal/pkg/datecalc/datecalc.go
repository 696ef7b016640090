package datecalc

import "time"

const dateLayout = "2006-01-02"

// Normalize strips the time-of-day so two timestamps on the same calendar
// day compare equal regardless of the offset carried by the input.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "YYYY-MM-DD" string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Normalize(t), nil
}

// FormatDate renders a date back to "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DaysInclusive returns the number of calendar days spanned by [start, end],
// counting both endpoints. Returns 0 when end is before start.
func DaysInclusive(start, end time.Time) int {
	start = Normalize(start)
	end = Normalize(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// IsWeekend reports whether the day falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// HolidaySet indexes holiday dates by their "YYYY-MM-DD" form for O(1)
// lookups during working-day iteration.
type HolidaySet map[string]struct{}

func NewHolidaySet(dates []time.Time) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[FormatDate(Normalize(d))] = struct{}{}
	}
	return set
}

func (s HolidaySet) Contains(t time.Time) bool {
	_, ok := s[FormatDate(Normalize(t))]
	return ok
}

// WorkingDays counts the days in [start, end] inclusive that are neither
// weekend days nor declared holidays. Returns 0 when end is before start.
func WorkingDays(start, end time.Time, holidays HolidaySet) int {
	start = Normalize(start)
	end = Normalize(end)

	var count int
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			continue
		}
		if holidays.Contains(d) {
			continue
		}
		count++
	}
	return count
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] share at least
// one day. Touching endpoints count as overlapping.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = Normalize(aStart), Normalize(aEnd)
	bStart, bEnd = Normalize(bStart), Normalize(bEnd)
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// Clip clamps [start, end] to the window [winStart, winEnd].
// Callers should check Overlaps first; a disjoint input produces an
// inverted range, which DaysInclusive treats as zero days.
func Clip(start, end, winStart, winEnd time.Time) (time.Time, time.Time) {
	start, end = Normalize(start), Normalize(end)
	winStart, winEnd = Normalize(winStart), Normalize(winEnd)
	if start.Before(winStart) {
		start = winStart
	}
	if end.After(winEnd) {
		end = winEnd
	}
	return start, end
}
