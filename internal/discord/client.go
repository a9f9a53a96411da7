package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/MultiplierShop/internal/domain"
)

// Client defaults
const (
	DefaultClientTimeout = 10 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryDelay    = 500 * time.Millisecond
)

// API paths
const (
	PathHealthz   = "/healthz"
	PathShopItems = "/api/v1/shop/items"
	PathQuote     = "/api/v1/shop/quote"
	PathQuoteMax  = "/api/v1/shop/quote-max"
)

// APIError is a non-2xx response from the shop API.
type APIError struct {
	StatusCode  int
	Message     string
	Suggestions []string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.StatusCode)
	}
	return "API error: " + e.Message
}

// APIClient handles communication with the Multiplier Shop API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultClientTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

type quoteRequest struct {
	Item              string `json:"item"`
	Amount            int    `json:"amount,omitempty"`
	CurrentMultiplier int    `json:"current_multiplier"`
	Balance           int    `json:"balance"`
}

// GetShop lists the multiplier items priced at currentMultiplier.
func (c *APIClient) GetShop(ctx context.Context, currentMultiplier int) ([]domain.Listing, error) {
	params := url.Values{}
	params.Set("multiplier", strconv.Itoa(currentMultiplier))

	var listings []domain.Listing
	if err := c.call(ctx, http.MethodGet, PathShopItems+"?"+params.Encode(), nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Quote prices amount units of item. Unaffordable quotes are returned with Affordable=false.
func (c *APIClient) Quote(ctx context.Context, item string, amount, currentMultiplier, balance int) (*domain.Quote, error) {
	req := quoteRequest{
		Item:              item,
		Amount:            amount,
		CurrentMultiplier: currentMultiplier,
		Balance:           balance,
	}

	var quote domain.Quote
	if err := c.call(ctx, http.MethodPost, PathQuote, req, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// QuoteMax quotes the largest purchase of item the balance covers.
func (c *APIClient) QuoteMax(ctx context.Context, item string, currentMultiplier, balance int) (*domain.Quote, error) {
	req := quoteRequest{
		Item:              item,
		CurrentMultiplier: currentMultiplier,
		Balance:           balance,
	}

	var quote domain.Quote
	if err := c.call(ctx, http.MethodPost, PathQuoteMax, req, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// Healthy reports whether the API answers its liveness probe.
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathHealthz, nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// call performs a request and decodes a 200 response into out.
func (c *APIClient) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var errResp struct {
		Error       string   `json:"error"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		apiErr.Message = errResp.Error
		apiErr.Suggestions = errResp.Suggestions
	}
	return apiErr
}

// doRequest performs an HTTP request, retrying transport failures and 5xx responses
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)

			select {
			case <-ctx.Done():
				return nil, errors.Join(ctx.Err(), lastErr)
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
