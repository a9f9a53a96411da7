package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/MultiplierShop/internal/domain"
	"github.com/osse101/MultiplierShop/internal/logger"
	"github.com/osse101/MultiplierShop/internal/shop"
)

// QuoteRequest prices amount units of a catalog item against a balance
type QuoteRequest struct {
	Item              string `json:"item" validate:"required,itemname"`
	Amount            int    `json:"amount" validate:"gte=1,lte=10000"`
	CurrentMultiplier int    `json:"current_multiplier" validate:"gte=0"`
	Balance           int    `json:"balance" validate:"gte=0"`
}

// QuoteMaxRequest asks for the largest purchase of a catalog item a balance covers
type QuoteMaxRequest struct {
	Item              string `json:"item" validate:"required,itemname"`
	CurrentMultiplier int    `json:"current_multiplier" validate:"gte=0"`
	Balance           int    `json:"balance" validate:"gte=0"`
}

// HandleListItems lists the catalog with next-unit prices
// @Summary List shop items
// @Description Multiplier items with the price of one more unit at the given multiplier
// @Tags shop
// @Produce json
// @Param multiplier query int false "Current multiplier (default 0)"
// @Success 200 {array} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/shop/items [get]
func HandleListItems(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		multiplier, ok := GetOptionalIntQueryParam(r, w, QueryParamMultiplier, 0)
		if !ok {
			return
		}

		listings, err := svc.ListItems(r.Context(), multiplier)
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Shop items listed", "count", len(listings), "multiplier", multiplier)
		respondJSON(w, http.StatusOK, listings)
	}
}

// HandleQuote handles quotes for a requested amount
// @Summary Quote a purchase
// @Description Cost, gain and affordability of buying amount units of an item. Unaffordable quotes are still returned with affordable=false and the shortfall.
// @Tags shop
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Quote details"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ItemNotFoundResponse
// @Router /api/v1/shop/quote [post]
func HandleQuote(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuoteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Quote"); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "item", req.Item, "amount", req.Amount)

		quote, err := svc.Quote(r.Context(), req.Item, req.Amount, req.CurrentMultiplier, req.Balance)
		respondQuote(w, r, ErrMsgQuoteFailed, quote, err)
	}
}

// HandleQuoteMax handles quotes for the largest affordable amount
// @Summary Quote the max purchase
// @Description Largest purchase of an item the balance covers. When not even one unit fits, amount is 0 and shortfall is what the first unit needs.
// @Tags shop
// @Accept json
// @Produce json
// @Param request body QuoteMaxRequest true "Quote details"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ItemNotFoundResponse
// @Router /api/v1/shop/quote-max [post]
func HandleQuoteMax(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuoteMaxRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Quote max"); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "item", req.Item)

		quote, err := svc.QuoteMax(r.Context(), req.Item, req.CurrentMultiplier, req.Balance)
		respondQuote(w, r, ErrMsgQuoteMaxFailed, quote, err)
	}
}

// respondQuote writes a quote. A quote the balance does not cover is a normal answer, not a failure.
func respondQuote(w http.ResponseWriter, r *http.Request, opName string, quote *domain.Quote, err error) {
	if err != nil && !(quote != nil && errors.Is(err, domain.ErrInsufficientFunds)) {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}
