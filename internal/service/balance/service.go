package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/balance"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/database"
)

type BalanceService struct {
	db *database.DB
	balance.BalanceRepository
}

func NewBalanceService(db *database.DB, balanceRepository balance.BalanceRepository) *BalanceService {
	return &BalanceService{
		db:                db,
		BalanceRepository: balanceRepository,
	}
}

func (s *BalanceService) GetBalance(ctx context.Context) (balance.Balance, error) {
	bal, err := s.BalanceRepository.Get(ctx)
	if err != nil {
		// A fresh ledger reads as all-zero counters.
		if errors.Is(err, balance.ErrBalanceNotFound) {
			return balance.Balance{}, nil
		}
		return balance.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	return bal, nil
}

// UpdateBalance replaces all three counters at once. Partial updates are
// not supported; the request carries the full ledger state.
func (s *BalanceService) UpdateBalance(ctx context.Context, req balance.UpdateBalanceRequest) (balance.Balance, error) {
	saved, err := s.BalanceRepository.Save(ctx, balance.Balance{
		Earned: int(req.Earned),
		Sick:   int(req.Sick),
		Casual: int(req.Casual),
	})
	if err != nil {
		return balance.Balance{}, fmt.Errorf("failed to save leave balance: %w", err)
	}
	return saved, nil
}
