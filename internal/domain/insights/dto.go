package insights

import "github.com/leaveplan/leaveplan-backend-go/internal/pkg/validator"

// MaxAbsencePeriods bounds the calculator input list.
const MaxAbsencePeriods = 10

// AbsencePeriod - one absence entry. Either boundary may be left unset;
// periods with an unset or unparseable boundary contribute nothing.
type AbsencePeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// AggregateAbsenceRequest - absence periods measured against a reference window.
type AggregateAbsenceRequest struct {
	Periods     []AbsencePeriod `json:"periods"`
	WindowStart string          `json:"window_start"`
	WindowEnd   string          `json:"window_end"`
}

func (r *AggregateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Periods) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "periods",
			Message: "at least one period is required",
		})
	}
	if len(r.Periods) > MaxAbsencePeriods {
		errs = append(errs, validator.ValidationError{
			Field:   "periods",
			Message: "at most 10 periods are allowed",
		})
	}

	windowStart, startOK := validator.IsValidDate(r.WindowStart)
	if validator.IsEmpty(r.WindowStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "window_start",
			Message: "window_start is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "window_start",
			Message: "window_start must be in YYYY-MM-DD format",
		})
	}

	windowEnd, endOK := validator.IsValidDate(r.WindowEnd)
	if validator.IsEmpty(r.WindowEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "window_end",
			Message: "window_end is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "window_end",
			Message: "window_end must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && windowEnd.Before(windowStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "window_end",
			Message: "window_end must not be before window_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AbsenceSummaryResponse - derived absence/presence totals for the window.
type AbsenceSummaryResponse struct {
	TotalAbsentDays    int     `json:"total_absent_days"`
	TotalAbsentYears   float64 `json:"total_absent_years"`
	TotalPeriodDays    int     `json:"total_period_days"`
	ActualPresentDays  int     `json:"actual_present_days"`
	ActualPresentYears float64 `json:"actual_present_years"`
}

// DashboardResponse is the combined response for the dashboard endpoint
type DashboardResponse struct {
	Balance           BalanceSummary      `json:"balance"`
	UpcomingVacations int                 `json:"upcoming_vacations"`
	BookedWorkingDays int                 `json:"booked_working_days"`
	NextLongWeekend   *LongWeekendSummary `json:"next_long_weekend,omitempty"`
}

type BalanceSummary struct {
	Earned int `json:"earned"`
	Sick   int `json:"sick"`
	Casual int `json:"casual"`
}

type LongWeekendSummary struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Day  string `json:"day"`
}
