package holiday

import (
	"testing"
	"time"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func named(name string, date time.Time) holiday.Holiday {
	return holiday.Holiday{ID: name, Name: name, Date: date}
}

func TestFindLongWeekends_FiltersByWeekday(t *testing.T) {
	today := day(2025, 6, 1)
	holidays := []holiday.Holiday{
		named("Monday holiday", day(2025, 6, 2)),
		named("Wednesday holiday", day(2025, 6, 4)),
		named("Friday holiday", day(2025, 6, 6)),
	}

	got := FindLongWeekends(holidays, today)

	require.Len(t, got, 2)
	assert.Equal(t, "Monday holiday", got[0].Name)
	assert.Equal(t, "Friday holiday", got[1].Name)
}

func TestFindLongWeekends_ExcludesPastIncludesToday(t *testing.T) {
	today := day(2025, 6, 9) // a Monday

	holidays := []holiday.Holiday{
		named("Last Friday", day(2025, 5, 30)),
		named("Today", day(2025, 6, 9)),
		named("Next Friday", day(2025, 6, 13)),
	}

	got := FindLongWeekends(holidays, today)

	require.Len(t, got, 2)
	assert.Equal(t, "Today", got[0].Name)
	assert.Equal(t, "Next Friday", got[1].Name)
}

func TestFindLongWeekends_IgnoresTimeOfDayOnToday(t *testing.T) {
	// Late-evening reference time still counts a same-day holiday.
	today := time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC)

	got := FindLongWeekends([]holiday.Holiday{named("Today", day(2025, 6, 9))}, today)
	require.Len(t, got, 1)
}

func TestFindLongWeekends_DeduplicatesAndSorts(t *testing.T) {
	today := day(2025, 6, 1)

	first := holiday.Holiday{ID: "a", Name: "Founders Day", Date: day(2025, 6, 16)}
	dupe := holiday.Holiday{ID: "b", Name: "Founders Day", Date: day(2025, 6, 16)}
	earlier := holiday.Holiday{ID: "c", Name: "Midsummer", Date: day(2025, 6, 6)}

	got := FindLongWeekends([]holiday.Holiday{first, dupe, earlier}, today)

	require.Len(t, got, 2)
	// Sorted ascending, first occurrence kept for the duplicate pair.
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestFindLongWeekends_EmptyInput(t *testing.T) {
	assert.Empty(t, FindLongWeekends(nil, day(2025, 6, 1)))
}

func TestIsDuplicate(t *testing.T) {
	existing := []holiday.Holiday{
		named("New Year", day(2025, 1, 1)),
		named("Labor Day", day(2025, 5, 1)),
	}

	cases := []struct {
		name      string
		candidate holiday.Holiday
		want      bool
	}{
		{"same name different date", named("New Year", day(2026, 1, 1)), true},
		{"same date different name", named("Fete du Travail", day(2025, 5, 1)), true},
		{"both differ", named("Independence Day", day(2025, 7, 4)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsDuplicate(c.candidate, existing))
		})
	}

	assert.False(t, IsDuplicate(named("Anything", day(2025, 1, 1)), nil))
}
