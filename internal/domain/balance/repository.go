package balance

import (
	"context"
)

// BalanceRepository - interface for the leave_balances ledger row
type BalanceRepository interface {
	Get(ctx context.Context) (Balance, error)
	// Save replaces all three counters atomically. Repositories honor the
	// Querier in context so Save participates in an enclosing transaction.
	Save(ctx context.Context, b Balance) (Balance, error)
}
