package vacation

import (
	"context"
)

// VacationRepository - interface for vacations table
type VacationRepository interface {
	Create(ctx context.Context, v Vacation) (Vacation, error)
	GetByID(ctx context.Context, id string) (Vacation, error)
	List(ctx context.Context) ([]Vacation, error)
	Delete(ctx context.Context, id string) error
}
