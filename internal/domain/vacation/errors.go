package vacation

import "errors"

var (
	ErrVacationNotFound    = errors.New("Vacation not found")
	ErrOverlappingVacation = errors.New("Vacation overlaps an existing vacation")
	ErrInsufficientBalance = errors.New("Insufficient leave balance")
)
