package main

import (
	"fmt"
	"net/http"

	"github.com/leaveplan/leaveplan-backend-go/internal/config"
	appHTTP "github.com/leaveplan/leaveplan-backend-go/internal/handler/http"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/database"
	"github.com/leaveplan/leaveplan-backend-go/internal/repository/postgresql"
	balanceService "github.com/leaveplan/leaveplan-backend-go/internal/service/balance"
	dashboardService "github.com/leaveplan/leaveplan-backend-go/internal/service/dashboard"
	holidayService "github.com/leaveplan/leaveplan-backend-go/internal/service/holiday"
	insightsService "github.com/leaveplan/leaveplan-backend-go/internal/service/insights"
	vacationService "github.com/leaveplan/leaveplan-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	holidayRepo := postgresql.NewHolidayRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)

	holidaySvc := holidayService.NewHolidayService(db, holidayRepo)
	vacationSvc := vacationService.NewVacationService(db, vacationRepo, holidayRepo, balanceRepo)
	balanceSvc := balanceService.NewBalanceService(db, balanceRepo)
	absenceCalculator := insightsService.NewAbsenceCalculator()
	dashboardSvc := dashboardService.NewDashboardService(vacationRepo, holidayRepo, balanceRepo)

	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)
	balanceHandler := appHTTP.NewBalanceHandler(balanceSvc)
	insightsHandler := appHTTP.NewInsightsHandler(absenceCalculator)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		holidayHandler,
		vacationHandler,
		balanceHandler,
		insightsHandler,
		dashboardHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
