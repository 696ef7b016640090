package balance

import "time"

// Balance - the three independent leave counters. A single ledger row;
// updates replace all three counters at once.
type Balance struct {
	Earned int
	Sick   int
	Casual int

	UpdatedAt time.Time
}

// Available returns the counter backing the given leave type code.
func (b Balance) Available(leaveType string) int {
	switch leaveType {
	case "EL":
		return b.Earned
	case "SL":
		return b.Sick
	case "CL":
		return b.Casual
	default:
		return 0
	}
}

// CanAfford reports whether the counter for leaveType covers workingDays.
func (b Balance) CanAfford(leaveType string, workingDays int) bool {
	return workingDays <= b.Available(leaveType)
}

// Deduct returns a copy with workingDays removed from the leaveType counter.
// The caller must check CanAfford first; counters never go negative.
func (b Balance) Deduct(leaveType string, workingDays int) Balance {
	return b.adjust(leaveType, -workingDays)
}

// Refund returns a copy with workingDays added back to the leaveType counter.
func (b Balance) Refund(leaveType string, workingDays int) Balance {
	return b.adjust(leaveType, workingDays)
}

func (b Balance) adjust(leaveType string, delta int) Balance {
	switch leaveType {
	case "EL":
		b.Earned += delta
		if b.Earned < 0 {
			b.Earned = 0
		}
	case "SL":
		b.Sick += delta
		if b.Sick < 0 {
			b.Sick = 0
		}
	case "CL":
		b.Casual += delta
		if b.Casual < 0 {
			b.Casual = 0
		}
	}
	return b
}
