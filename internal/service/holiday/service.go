package holiday

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/holiday"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/database"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/datecalc"
)

type HolidayService struct {
	db *database.DB
	holiday.HolidayRepository
}

func NewHolidayService(db *database.DB, holidayRepository holiday.HolidayRepository) *HolidayService {
	return &HolidayService{
		db:                db,
		HolidayRepository: holidayRepository,
	}
}

func (s *HolidayService) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	date, err := datecalc.ParseDate(req.Date)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	existing, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	candidate := holiday.Holiday{
		Name: strings.TrimSpace(req.Name),
		Date: date,
	}
	if IsDuplicate(candidate, existing) {
		return holiday.Holiday{}, holiday.ErrDuplicateHoliday
	}

	created, err := s.HolidayRepository.Create(ctx, candidate)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

func (s *HolidayService) ListHolidays(ctx context.Context) ([]holiday.Holiday, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

func (s *HolidayService) DeleteHoliday(ctx context.Context, id string) error {
	if _, err := s.HolidayRepository.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.HolidayRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// LongWeekends returns upcoming long-weekend opportunities relative to today.
func (s *HolidayService) LongWeekends(ctx context.Context, today time.Time) ([]holiday.Holiday, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return FindLongWeekends(holidays, today), nil
}
