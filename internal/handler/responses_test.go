package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MultiplierShop/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"invalid input", fmt.Errorf("quantity: %w", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidInputError},
		{"item not found sentinel", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"item not found typed", &domain.ItemNotFoundError{Query: "x"}, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"insufficient funds", fmt.Errorf("x: %w", domain.ErrInsufficientFunds), http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{"catalog not loaded", domain.ErrCatalogNotLoaded, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"unknown error is hidden", errors.New("connection reset by peer"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
