package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/vacation"
	"github.com/leaveplan/leaveplan-backend-go/internal/handler/http/response"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/validator"
	vacationService "github.com/leaveplan/leaveplan-backend-go/internal/service/vacation"
)

type VacationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService *vacationService.VacationService
}

func NewVacationHandler(service *vacationService.VacationService) VacationHandler {
	return &VacationHandlerImpl{vacationService: service}
}

// List implements VacationHandler.
func (h *VacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	vacations, err := h.vacationService.ListVacations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]vacation.VacationResponse, 0, len(vacations))
	for _, item := range vacations {
		resp = append(resp, vacation.NewVacationResponse(item))
	}

	response.Success(w, resp)
}

// Create implements VacationHandler.
func (h *VacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateVacationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateVacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Resolve the legacy from_date/to_date field shape before validating.
	req.Normalize()

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.vacationService.CreateVacation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation created successfully", vacation.NewVacationResponse(created))
}

// Delete implements VacationHandler.
func (h *VacationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vacation ID is required", nil)
		return
	}
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Vacation ID must be a valid UUID", nil)
		return
	}

	if err := h.vacationService.DeleteVacation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation deleted successfully", nil)
}
