package vacation

import "time"

// LeaveType maps to the three independent balance counters.
type LeaveType string

const (
	LeaveTypeEarned LeaveType = "EL"
	LeaveTypeSick   LeaveType = "SL"
	LeaveTypeCasual LeaveType = "CL"
)

var LeaveTypes = []string{
	string(LeaveTypeEarned),
	string(LeaveTypeSick),
	string(LeaveTypeCasual),
}

// Vacation entity. StartDate <= EndDate, WorkingDays <= TotalDays.
// Records are never mutated in place; an edit upstream is a delete
// followed by a recreate.
type Vacation struct {
	ID          string
	Name        string
	Destination string

	StartDate time.Time
	EndDate   time.Time

	LeaveType   LeaveType
	WorkingDays int
	TotalDays   int

	CreatedAt time.Time
	UpdatedAt time.Time
}
