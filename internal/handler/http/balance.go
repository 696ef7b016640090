package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/balance"
	"github.com/leaveplan/leaveplan-backend-go/internal/handler/http/response"
	balanceService "github.com/leaveplan/leaveplan-backend-go/internal/service/balance"
)

type BalanceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type BalanceHandlerImpl struct {
	balanceService *balanceService.BalanceService
}

func NewBalanceHandler(service *balanceService.BalanceService) BalanceHandler {
	return &BalanceHandlerImpl{balanceService: service}
}

// Get implements BalanceHandler.
func (h *BalanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	bal, err := h.balanceService.GetBalance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance.NewBalanceResponse(bal))
}

// Update implements BalanceHandler.
func (h *BalanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req balance.UpdateBalanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := h.balanceService.UpdateBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance updated successfully", balance.NewBalanceResponse(saved))
}
