package vacation

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/balance"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/vacation"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/database"
	"github.com/leaveplan/leaveplan-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHasOverlap(t *testing.T) {
	existing := []vacation.Vacation{
		{StartDate: day(2025, 8, 4), EndDate: day(2025, 8, 8)},
		{StartDate: day(2025, 9, 1), EndDate: day(2025, 9, 1)},
	}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"clear of both", day(2025, 8, 11), day(2025, 8, 15), false},
		{"inside first", day(2025, 8, 5), day(2025, 8, 6), true},
		{"touching end of first", day(2025, 8, 8), day(2025, 8, 12), true},
		{"covers single-day vacation", day(2025, 8, 30), day(2025, 9, 2), true},
		{"day before first starts", day(2025, 8, 1), day(2025, 8, 3), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, HasOverlap(c.start, c.end, existing))
		})
	}

	assert.False(t, HasOverlap(day(2025, 8, 4), day(2025, 8, 8), nil))
}

// ===== INTEGRATION TESTS (require a provisioned test database) =====

var testVacationDB *database.DB

func vacationTestInit(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testVacationDB != nil {
		return
	}

	var err error
	testVacationDB, err = database.NewPostgreSQLDB(dsn, 5, 1)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

func truncateVacationTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"vacations", "holidays"} {
		_, err := testVacationDB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
	_, err := testVacationDB.Exec(ctx, "DELETE FROM leave_balances")
	require.NoError(t, err)
}

func newTestService() *VacationService {
	return NewVacationService(
		testVacationDB,
		postgresql.NewVacationRepository(testVacationDB),
		postgresql.NewHolidayRepository(testVacationDB),
		postgresql.NewBalanceRepository(testVacationDB),
	)
}

func TestVacationService_CreateDeductsBalance(t *testing.T) {
	ctx := context.Background()
	vacationTestInit(t)
	truncateVacationTables(t, ctx)

	balanceRepo := postgresql.NewBalanceRepository(testVacationDB)
	_, err := balanceRepo.Save(ctx, balance.Balance{Earned: 10, Sick: 5, Casual: 3})
	require.NoError(t, err)

	svc := newTestService()

	// 2025-08-04 is a Monday; Mon-Fri plus the following Monday.
	created, err := svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		Name:        "Coast trip",
		Destination: "Porto",
		LeaveType:   "EL",
		StartDate:   "2025-08-04",
		EndDate:     "2025-08-11",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 6, created.WorkingDays)
	assert.Equal(t, 8, created.TotalDays)

	bal, err := balanceRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, bal.Earned)
	assert.Equal(t, 5, bal.Sick)
}

func TestVacationService_CreateRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	vacationTestInit(t)
	truncateVacationTables(t, ctx)

	balanceRepo := postgresql.NewBalanceRepository(testVacationDB)
	_, err := balanceRepo.Save(ctx, balance.Balance{Earned: 20})
	require.NoError(t, err)

	svc := newTestService()

	_, err = svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		Name: "First", LeaveType: "EL",
		StartDate: "2025-08-04", EndDate: "2025-08-08",
	})
	require.NoError(t, err)

	_, err = svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		Name: "Second", LeaveType: "EL",
		StartDate: "2025-08-08", EndDate: "2025-08-12",
	})
	assert.ErrorIs(t, err, vacation.ErrOverlappingVacation)
}

func TestVacationService_CreateRejectsInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	vacationTestInit(t)
	truncateVacationTables(t, ctx)

	balanceRepo := postgresql.NewBalanceRepository(testVacationDB)
	_, err := balanceRepo.Save(ctx, balance.Balance{Casual: 2})
	require.NoError(t, err)

	svc := newTestService()

	_, err = svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		Name: "Too long", LeaveType: "CL",
		StartDate: "2025-08-04", EndDate: "2025-08-08",
	})
	assert.ErrorIs(t, err, vacation.ErrInsufficientBalance)
}

func TestVacationService_DeleteRefundsBalance(t *testing.T) {
	ctx := context.Background()
	vacationTestInit(t)
	truncateVacationTables(t, ctx)

	balanceRepo := postgresql.NewBalanceRepository(testVacationDB)
	_, err := balanceRepo.Save(ctx, balance.Balance{Sick: 8})
	require.NoError(t, err)

	svc := newTestService()

	created, err := svc.CreateVacation(ctx, vacation.CreateVacationRequest{
		Name: "Recovery", LeaveType: "SL",
		StartDate: "2025-08-04", EndDate: "2025-08-06",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVacation(ctx, created.ID))

	bal, err := balanceRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, bal.Sick)

	err = svc.DeleteVacation(ctx, created.ID)
	assert.ErrorIs(t, err, vacation.ErrVacationNotFound)
}
