package holiday

import "errors"

var (
	ErrHolidayNotFound  = errors.New("Holiday not found")
	ErrDuplicateHoliday = errors.New("Holiday with the same name or date already exists")
)
