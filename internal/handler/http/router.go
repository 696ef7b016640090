package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	holidayHandler HolidayHandler,
	vacationHandler VacationHandler,
	balanceHandler BalanceHandler,
	insightsHandler InsightsHandler,
	dashboardHandler DashboardHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leaveplan"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.List)
			r.Post("/", holidayHandler.Create)
			r.Get("/long-weekends", holidayHandler.ListLongWeekends)
			r.Delete("/{id}", holidayHandler.Delete)
		})

		r.Route("/vacations", func(r chi.Router) {
			r.Get("/", vacationHandler.List)
			r.Post("/", vacationHandler.Create)
			r.Delete("/{id}", vacationHandler.Delete)
		})

		r.Route("/balance", func(r chi.Router) {
			r.Get("/", balanceHandler.Get)
			r.Put("/", balanceHandler.Update)
		})

		r.Route("/insights", func(r chi.Router) {
			r.Post("/absence", insightsHandler.AggregateAbsence)
		})

		r.Get("/dashboard", dashboardHandler.GetSummary)
	})

	return r
}
