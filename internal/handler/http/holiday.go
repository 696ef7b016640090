package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/holiday"
	"github.com/leaveplan/leaveplan-backend-go/internal/handler/http/response"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/validator"
	holidayService "github.com/leaveplan/leaveplan-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListLongWeekends(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService *holidayService.HolidayService
}

func NewHolidayHandler(service *holidayService.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: service}
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, item := range holidays {
		resp = append(resp, holiday.NewHolidayResponse(item))
	}

	response.Success(w, resp)
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", holiday.NewHolidayResponse(created))
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Holiday ID must be a valid UUID", nil)
		return
	}

	if err := h.holidayService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

// ListLongWeekends implements HolidayHandler.
func (h *HolidayHandlerImpl) ListLongWeekends(w http.ResponseWriter, r *http.Request) {
	longWeekends, err := h.holidayService.LongWeekends(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]holiday.LongWeekendResponse, 0, len(longWeekends))
	for _, item := range longWeekends {
		resp = append(resp, holiday.LongWeekendResponse{
			ID:   item.ID,
			Name: item.Name,
			Date: item.Date.Format("2006-01-02"),
			Day:  item.Date.Weekday().String(),
		})
	}

	response.Success(w, resp)
}
