package holiday

import "time"

// Holiday entity - an all-day calendar holiday. Unique by (name, date)
// within the collection; duplicates are rejected at submission time.
type Holiday struct {
	ID   string
	Name string
	Date time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
