package insights

import (
	"fmt"
	"math"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/insights"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/datecalc"
)

const daysPerYear = 365.25

type AbsenceCalculator struct {
}

func NewAbsenceCalculator() *AbsenceCalculator {
	return &AbsenceCalculator{}
}

// Aggregate clips each absence period to the reference window and derives
// the present/absent totals. Periods with unset or malformed boundaries are
// skipped rather than failing the whole computation. Periods that overlap
// each other are each counted in full: the calculator trusts its input and
// deliberately does not de-duplicate across periods.
func (c *AbsenceCalculator) Aggregate(req insights.AggregateAbsenceRequest) (insights.AbsenceSummaryResponse, error) {
	windowStart, err := datecalc.ParseDate(req.WindowStart)
	if err != nil {
		return insights.AbsenceSummaryResponse{}, fmt.Errorf("failed to parse window start: %w", err)
	}
	windowEnd, err := datecalc.ParseDate(req.WindowEnd)
	if err != nil {
		return insights.AbsenceSummaryResponse{}, fmt.Errorf("failed to parse window end: %w", err)
	}

	var totalAbsentDays int
	for _, period := range req.Periods {
		start, err := datecalc.ParseDate(period.StartDate)
		if err != nil {
			continue
		}
		end, err := datecalc.ParseDate(period.EndDate)
		if err != nil {
			continue
		}
		if !datecalc.Overlaps(start, end, windowStart, windowEnd) {
			continue
		}

		clippedStart, clippedEnd := datecalc.Clip(start, end, windowStart, windowEnd)
		totalAbsentDays += datecalc.DaysInclusive(clippedStart, clippedEnd)
	}

	totalPeriodDays := datecalc.DaysInclusive(windowStart, windowEnd)
	actualPresentDays := totalPeriodDays - totalAbsentDays
	if actualPresentDays < 0 {
		actualPresentDays = 0
	}

	return insights.AbsenceSummaryResponse{
		TotalAbsentDays:    totalAbsentDays,
		TotalAbsentYears:   roundYears(totalAbsentDays),
		TotalPeriodDays:    totalPeriodDays,
		ActualPresentDays:  actualPresentDays,
		ActualPresentYears: roundYears(actualPresentDays),
	}, nil
}

func roundYears(days int) float64 {
	return math.Round(float64(days)/daysPerYear*100) / 100
}
