package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MultiplierShop/internal/domain"
	"github.com/osse101/MultiplierShop/mocks"
)

func testItem() domain.MultiplierItem {
	return domain.MultiplierItem{ID: "small_pill", Name: "Small Pill", Plural: "Small Pills", Price: 10, Gain: 1}
}

func TestHandleListItems(t *testing.T) {
	t.Run("Success with multiplier", func(t *testing.T) {
		mockSvc := mocks.NewMockShopService(t)
		listings := []domain.Listing{{Item: testItem(), CurrentMultiplier: 5, UnitPrice: 80}}
		mockSvc.On("ListItems", mock.Anything, 5).Return(listings, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/items?multiplier=5", nil)
		rec := httptest.NewRecorder()

		HandleListItems(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Listing
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, listings, got)
	})

	t.Run("Defaults to multiplier zero", func(t *testing.T) {
		mockSvc := mocks.NewMockShopService(t)
		mockSvc.On("ListItems", mock.Anything, 0).Return([]domain.Listing{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/items", nil)
		rec := httptest.NewRecorder()

		HandleListItems(mockSvc)(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	for _, raw := range []string{"abc", "-3"} {
		t.Run("Invalid multiplier "+raw, func(t *testing.T) {
			mockSvc := mocks.NewMockShopService(t)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/items?multiplier="+raw, nil)
			rec := httptest.NewRecorder()

			HandleListItems(mockSvc)(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamMultiplier))
		})
	}

	t.Run("Catalog not loaded", func(t *testing.T) {
		mockSvc := mocks.NewMockShopService(t)
		mockSvc.On("ListItems", mock.Anything, 0).Return(nil, domain.ErrCatalogNotLoaded)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/items", nil)
		rec := httptest.NewRecorder()

		HandleListItems(mockSvc)(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandleQuote(t *testing.T) {
	affordable := &domain.Quote{
		Kind: domain.QuoteKindAmount, Item: testItem(), Amount: 2, Cost: 34, Gain: 2,
		CurrentMultiplier: 1, NewMultiplier: 3, Balance: 100, Affordable: true,
	}
	unaffordable := &domain.Quote{
		Kind: domain.QuoteKindAmount, Item: testItem(), Amount: 2, Cost: 34, Gain: 2,
		CurrentMultiplier: 1, NewMultiplier: 3, Balance: 20, Shortfall: 14,
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockShopService)
		expectedStatus int
		verifyBody     func(*testing.T, []byte)
	}{
		{
			name: "Affordable",
			body: `{"item":"small_pill","amount":2,"current_multiplier":1,"balance":100}`,
			setupMock: func(m *mocks.MockShopService) {
				m.On("Quote", mock.Anything, "small_pill", 2, 1, 100).Return(affordable, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body []byte) {
				var got domain.Quote
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, *affordable, got)
			},
		},
		{
			name: "Insufficient funds still returns the quote",
			body: `{"item":"small_pill","amount":2,"current_multiplier":1,"balance":20}`,
			setupMock: func(m *mocks.MockShopService) {
				m.On("Quote", mock.Anything, "small_pill", 2, 1, 20).
					Return(unaffordable, fmt.Errorf("short: %w", domain.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body []byte) {
				var got domain.Quote
				require.NoError(t, json.Unmarshal(body, &got))
				assert.False(t, got.Affordable)
				assert.Equal(t, 14, got.Shortfall)
			},
		},
		{
			name: "Unknown item with suggestions",
			body: `{"item":"pill","amount":1,"current_multiplier":1,"balance":100}`,
			setupMock: func(m *mocks.MockShopService) {
				err := fmt.Errorf("resolve: %w", &domain.ItemNotFoundError{Query: "pill", Suggestions: []string{"small_pill"}})
				m.On("Quote", mock.Anything, "pill", 1, 1, 100).Return(nil, err)
			},
			expectedStatus: http.StatusNotFound,
			verifyBody: func(t *testing.T, body []byte) {
				var got ItemNotFoundResponse
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, ErrMsgItemNotFoundError, got.Error)
				assert.Equal(t, []string{"small_pill"}, got.Suggestions)
			},
		},
		{
			name:           "Amount above the purchase limit",
			body:           `{"item":"small_pill","amount":10001,"current_multiplier":1,"balance":100}`,
			setupMock:      func(m *mocks.MockShopService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Must be at most 10000")
			},
		},
		{
			name:           "Missing item",
			body:           `{"amount":1,"current_multiplier":1,"balance":100}`,
			setupMock:      func(m *mocks.MockShopService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "This field is required")
			},
		},
		{
			name:           "Blank item",
			body:           `{"item":"   ","amount":1,"current_multiplier":1,"balance":100}`,
			setupMock:      func(m *mocks.MockShopService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Invalid item name")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockShopService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/shop/quote", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			HandleQuote(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.Bytes())
		})
	}
}

func TestHandleQuoteMax(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockShopService(t)
		quote := &domain.Quote{Kind: domain.QuoteKindMax, Item: testItem(), Amount: 1, Cost: 10, Gain: 1,
			CurrentMultiplier: 1, NewMultiplier: 2, Balance: 33, Affordable: true}
		mockSvc.On("QuoteMax", mock.Anything, "Small Pill", 1, 33).Return(quote, nil)

		body := `{"item":"Small Pill","current_multiplier":1,"balance":33}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shop/quote-max", strings.NewReader(body))
		rec := httptest.NewRecorder()

		HandleQuoteMax(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"max"`)
	})

	t.Run("Nothing affordable", func(t *testing.T) {
		mockSvc := mocks.NewMockShopService(t)
		quote := &domain.Quote{Kind: domain.QuoteKindMax, Item: testItem(), CurrentMultiplier: 1,
			NewMultiplier: 1, Balance: 4, Shortfall: 6}
		mockSvc.On("QuoteMax", mock.Anything, "small_pill", 1, 4).
			Return(quote, fmt.Errorf("short: %w", domain.ErrInsufficientFunds))

		body := `{"item":"small_pill","current_multiplier":1,"balance":4}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shop/quote-max", strings.NewReader(body))
		rec := httptest.NewRecorder()

		HandleQuoteMax(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"shortfall":6`)
		assert.Contains(t, rec.Body.String(), `"amount":0`)
	})

	t.Run("Insufficient funds without a quote is an error", func(t *testing.T) {
		mockSvc := mocks.NewMockShopService(t)
		mockSvc.On("QuoteMax", mock.Anything, "small_pill", 1, 4).Return(nil, domain.ErrInsufficientFunds)

		body := `{"item":"small_pill","current_multiplier":1,"balance":4}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shop/quote-max", strings.NewReader(body))
		rec := httptest.NewRecorder()

		HandleQuoteMax(mockSvc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgNotEnoughMoneyError)
	})
}
