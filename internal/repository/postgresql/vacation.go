package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/vacation"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/database"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepositoryImpl{db: db}
}

func (r *vacationRepositoryImpl) Create(ctx context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (
			id, name, destination,
			start_date, end_date, leave_type,
			working_days, total_days,
			created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6,
			$7, $8,
			NOW(), NOW()
		)
		RETURNING id, name, destination, start_date, end_date, leave_type,
		          working_days, total_days, created_at, updated_at
	`

	var created vacation.Vacation
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		v.Name,
		v.Destination,
		v.StartDate,
		v.EndDate,
		string(v.LeaveType),
		v.WorkingDays,
		v.TotalDays,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Destination,
		&created.StartDate,
		&created.EndDate,
		&created.LeaveType,
		&created.WorkingDays,
		&created.TotalDays,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return vacation.Vacation{}, err
	}

	return created, nil
}

func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, destination, start_date, end_date, leave_type,
		       working_days, total_days, created_at, updated_at
		FROM vacations
		WHERE id = $1
	`

	var v vacation.Vacation
	err := q.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.Name,
		&v.Destination,
		&v.StartDate,
		&v.EndDate,
		&v.LeaveType,
		&v.WorkingDays,
		&v.TotalDays,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Vacation{}, vacation.ErrVacationNotFound
		}
		return vacation.Vacation{}, err
	}

	return v, nil
}

func (r *vacationRepositoryImpl) List(ctx context.Context) ([]vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, destination, start_date, end_date, leave_type,
		       working_days, total_days, created_at, updated_at
		FROM vacations
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		var v vacation.Vacation
		err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Destination,
			&v.StartDate,
			&v.EndDate,
			&v.LeaveType,
			&v.WorkingDays,
			&v.TotalDays,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}

	return vacations, rows.Err()
}

func (r *vacationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM vacations
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return vacation.ErrVacationNotFound
	}
	return nil
}
