package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/balance"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/holiday"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/insights"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/vacation"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/datecalc"
	holidayService "github.com/leaveplan/leaveplan-backend-go/internal/service/holiday"
)

type DashboardService struct {
	vacation.VacationRepository
	holiday.HolidayRepository
	balance.BalanceRepository
}

func NewDashboardService(
	vacationRepository vacation.VacationRepository,
	holidayRepository holiday.HolidayRepository,
	balanceRepository balance.BalanceRepository,
) *DashboardService {
	return &DashboardService{
		VacationRepository: vacationRepository,
		HolidayRepository:  holidayRepository,
		BalanceRepository:  balanceRepository,
	}
}

// GetSummary assembles the dashboard view: current balances, upcoming
// vacation totals, and the next long-weekend opportunity.
func (s *DashboardService) GetSummary(ctx context.Context, today time.Time) (insights.DashboardResponse, error) {
	today = datecalc.Normalize(today)

	bal, err := s.BalanceRepository.Get(ctx)
	if err != nil && !errors.Is(err, balance.ErrBalanceNotFound) {
		return insights.DashboardResponse{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	vacations, err := s.VacationRepository.List(ctx)
	if err != nil {
		return insights.DashboardResponse{}, fmt.Errorf("failed to list vacations: %w", err)
	}

	var upcoming, bookedWorkingDays int
	for _, v := range vacations {
		if datecalc.Normalize(v.StartDate).Before(today) {
			continue
		}
		upcoming++
		bookedWorkingDays += v.WorkingDays
	}

	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return insights.DashboardResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	summary := insights.DashboardResponse{
		Balance: insights.BalanceSummary{
			Earned: bal.Earned,
			Sick:   bal.Sick,
			Casual: bal.Casual,
		},
		UpcomingVacations: upcoming,
		BookedWorkingDays: bookedWorkingDays,
	}

	if longWeekends := holidayService.FindLongWeekends(holidays, today); len(longWeekends) > 0 {
		next := longWeekends[0]
		summary.NextLongWeekend = &insights.LongWeekendSummary{
			Name: next.Name,
			Date: datecalc.FormatDate(next.Date),
			Day:  next.Date.Weekday().String(),
		}
	}

	return summary, nil
}
