package holiday

import (
	"sort"
	"time"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/holiday"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/datecalc"
)

// IsDuplicate reports whether the candidate holiday repeats an existing one.
// The rule is field-level: same name OR same date, not range overlap.
func IsDuplicate(candidate holiday.Holiday, existing []holiday.Holiday) bool {
	candidateDate := datecalc.Normalize(candidate.Date)
	for _, h := range existing {
		if h.Name == candidate.Name {
			return true
		}
		if datecalc.Normalize(h.Date).Equal(candidateDate) {
			return true
		}
	}
	return false
}

// FindLongWeekends keeps holidays that fall on a Monday or Friday on or
// after today, collapses duplicate (name, date) pairs keeping the first
// occurrence, and returns them sorted ascending by date.
func FindLongWeekends(holidays []holiday.Holiday, today time.Time) []holiday.Holiday {
	today = datecalc.Normalize(today)
	seen := make(map[string]struct{})

	var result []holiday.Holiday
	for _, h := range holidays {
		date := datecalc.Normalize(h.Date)

		wd := date.Weekday()
		if wd != time.Monday && wd != time.Friday {
			continue
		}
		if date.Before(today) {
			continue
		}

		key := h.Name + "|" + datecalc.FormatDate(date)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		result = append(result, h)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return datecalc.Normalize(result[i].Date).Before(datecalc.Normalize(result[j].Date))
	})

	return result
}
