package vacation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/balance"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/holiday"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/vacation"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/database"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/datecalc"
	"github.com/leaveplan/leaveplan-backend-go/internal/repository/postgresql"
)

type VacationService struct {
	db *database.DB
	vacation.VacationRepository
	holiday.HolidayRepository
	balance.BalanceRepository
}

func NewVacationService(
	db *database.DB,
	vacationRepository vacation.VacationRepository,
	holidayRepository holiday.HolidayRepository,
	balanceRepository balance.BalanceRepository,
) *VacationService {
	return &VacationService{
		db:                 db,
		VacationRepository: vacationRepository,
		HolidayRepository:  holidayRepository,
		BalanceRepository:  balanceRepository,
	}
}

// HasOverlap reports whether [start, end] shares at least one day with any
// existing vacation. Any shared day rejects the candidate, not just exact
// duplicates: a day cannot belong to two vacations.
func HasOverlap(start, end time.Time, existing []vacation.Vacation) bool {
	for _, v := range existing {
		if datecalc.Overlaps(start, end, v.StartDate, v.EndDate) {
			return true
		}
	}
	return false
}

func (s *VacationService) CreateVacation(ctx context.Context, req vacation.CreateVacationRequest) (vacation.Vacation, error) {
	startDate, err := datecalc.ParseDate(req.StartDate)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := datecalc.ParseDate(req.EndDate)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	existing, err := s.VacationRepository.List(ctx)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to list vacations: %w", err)
	}
	if HasOverlap(startDate, endDate, existing) {
		return vacation.Vacation{}, vacation.ErrOverlappingVacation
	}

	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidayDates := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		holidayDates = append(holidayDates, h.Date)
	}

	workingDays := datecalc.WorkingDays(startDate, endDate, datecalc.NewHolidaySet(holidayDates))
	totalDays := datecalc.DaysInclusive(startDate, endDate)

	bal, err := s.BalanceRepository.Get(ctx)
	if err != nil && !errors.Is(err, balance.ErrBalanceNotFound) {
		return vacation.Vacation{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	if !bal.CanAfford(req.LeaveType, workingDays) {
		return vacation.Vacation{}, fmt.Errorf("%w: %d working days requested, %d available for %s",
			vacation.ErrInsufficientBalance, workingDays, bal.Available(req.LeaveType), req.LeaveType)
	}

	candidate := vacation.Vacation{
		Name:        strings.TrimSpace(req.Name),
		Destination: strings.TrimSpace(req.Destination),
		StartDate:   startDate,
		EndDate:     endDate,
		LeaveType:   vacation.LeaveType(req.LeaveType),
		WorkingDays: workingDays,
		TotalDays:   totalDays,
	}

	var created vacation.Vacation
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.VacationRepository.Create(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("failed to create vacation: %w", err)
		}

		if _, err := s.BalanceRepository.Save(txCtx, bal.Deduct(req.LeaveType, workingDays)); err != nil {
			return fmt.Errorf("failed to deduct leave balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return vacation.Vacation{}, err
	}

	return created, nil
}

func (s *VacationService) ListVacations(ctx context.Context) ([]vacation.Vacation, error) {
	vacations, err := s.VacationRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	return vacations, nil
}

// DeleteVacation removes a vacation and refunds its working days to the
// matching balance counter in the same transaction.
func (s *VacationService) DeleteVacation(ctx context.Context, id string) error {
	existing, err := s.VacationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	bal, err := s.BalanceRepository.Get(ctx)
	if err != nil && !errors.Is(err, balance.ErrBalanceNotFound) {
		return fmt.Errorf("failed to get leave balance: %w", err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.VacationRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete vacation: %w", err)
		}

		refunded := bal.Refund(string(existing.LeaveType), existing.WorkingDays)
		if _, err := s.BalanceRepository.Save(txCtx, refunded); err != nil {
			return fmt.Errorf("failed to refund leave balance: %w", err)
		}

		return nil
	})
}
