package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/insights"
	"github.com/leaveplan/leaveplan-backend-go/internal/handler/http/response"
	dashboardService "github.com/leaveplan/leaveplan-backend-go/internal/service/dashboard"
	insightsService "github.com/leaveplan/leaveplan-backend-go/internal/service/insights"
)

type InsightsHandler interface {
	AggregateAbsence(w http.ResponseWriter, r *http.Request)
}

type InsightsHandlerImpl struct {
	absenceCalculator *insightsService.AbsenceCalculator
}

func NewInsightsHandler(calculator *insightsService.AbsenceCalculator) InsightsHandler {
	return &InsightsHandlerImpl{absenceCalculator: calculator}
}

// AggregateAbsence implements InsightsHandler.
func (h *InsightsHandlerImpl) AggregateAbsence(w http.ResponseWriter, r *http.Request) {
	var req insights.AggregateAbsenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AggregateAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.absenceCalculator.Aggregate(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

type DashboardHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardService.DashboardService
}

func NewDashboardHandler(service *dashboardService.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: service}
}

// GetSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetSummary(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
