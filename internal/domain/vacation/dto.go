package vacation

import "github.com/leaveplan/leaveplan-backend-go/internal/pkg/validator"

// CreateVacationRequest accepts both historical field-name shapes for the
// range boundaries: start_date/end_date and from_date/to_date. Normalize
// canonicalizes into the first pair before any validation or computation.
type CreateVacationRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	LeaveType   string `json:"leave_type"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
}

// Normalize resolves the boundary field aliases, preferring start_date and
// end_date when both shapes are present.
func (r *CreateVacationRequest) Normalize() {
	if validator.IsEmpty(r.StartDate) {
		r.StartDate = r.FromDate
	}
	if validator.IsEmpty(r.EndDate) {
		r.EndDate = r.ToDate
	}
	r.FromDate = ""
	r.ToDate = ""
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of EL, SL, CL",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VacationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	LeaveType   string `json:"leave_type"`
	WorkingDays int    `json:"working_days"`
	TotalDays   int    `json:"total_days"`
}

func NewVacationResponse(v Vacation) VacationResponse {
	return VacationResponse{
		ID:          v.ID,
		Name:        v.Name,
		Destination: v.Destination,
		StartDate:   v.StartDate.Format("2006-01-02"),
		EndDate:     v.EndDate.Format("2006-01-02"),
		LeaveType:   string(v.LeaveType),
		WorkingDays: v.WorkingDays,
		TotalDays:   v.TotalDays,
	}
}
