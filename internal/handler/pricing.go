package handler

import (
	"net/http"

	"github.com/osse101/MultiplierShop/internal/logger"
	"github.com/osse101/MultiplierShop/internal/shop"
)

// CostRequest prices a batch of multiplier items with explicit parameters
type CostRequest struct {
	Amount            int `json:"amount" validate:"gte=0,lte=1000000"`
	CurrentMultiplier int `json:"current_multiplier" validate:"gte=0"`
	ItemPrice         int `json:"item_price" validate:"gte=0"`
	ItemGain          int `json:"item_gain" validate:"gte=0"`
}

// CostResponse is the total cost and multiplier gain of a batch
type CostResponse struct {
	Cost int `json:"cost"`
	Gain int `json:"gain"`
}

// MaxAffordableRequest asks for the largest batch a budget covers
type MaxAffordableRequest struct {
	AvailableBudget   int `json:"available_budget" validate:"gte=0"`
	CurrentMultiplier int `json:"current_multiplier" validate:"gte=0"`
	ItemPrice         int `json:"item_price" validate:"gte=0"`
	ItemGain          int `json:"item_gain" validate:"gte=0"`
}

// HandleCost handles raw cost calculations
// @Summary Calculate cost and gain
// @Description Cost of buying amount multiplier items on top of current_multiplier, and the multiplier gained
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body CostRequest true "Cost details"
// @Success 200 {object} CostResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/pricing/cost [post]
func HandleCost(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CostRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cost"); err != nil {
			return
		}

		cost, gain, err := svc.Cost(r.Context(), req.Amount, req.CurrentMultiplier, req.ItemPrice, req.ItemGain)
		if err != nil {
			respondServiceError(w, r, ErrMsgCostFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, CostResponse{Cost: cost, Gain: gain})
	}
}

// HandleMaxAffordable handles max-affordable searches
// @Summary Find max affordable amount
// @Description Largest amount whose cost does not exceed available_budget, with its cost and gain. limited is true when the search ceiling or iteration bound stopped it.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body MaxAffordableRequest true "Search details"
// @Success 200 {object} shop.SearchResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/pricing/max-affordable [post]
func HandleMaxAffordable(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MaxAffordableRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Max affordable"); err != nil {
			return
		}

		result, err := svc.MaxAffordable(r.Context(), req.AvailableBudget, req.CurrentMultiplier, req.ItemPrice, req.ItemGain)
		if err != nil {
			respondServiceError(w, r, ErrMsgMaxAffordableFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Max affordable computed", "budget", req.AvailableBudget, "amount", result.Amount, "limited", result.Limited)
		respondJSON(w, http.StatusOK, result)
	}
}
