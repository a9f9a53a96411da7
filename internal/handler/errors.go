package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Pricing operation error messages
	ErrMsgCostFailed          = "Failed to calculate cost"
	ErrMsgMaxAffordableFailed = "Failed to find max affordable amount"

	// Shop operation error messages
	ErrMsgListItemsFailed = "Failed to list items"
	ErrMsgQuoteFailed     = "Failed to quote purchase"
	ErrMsgQuoteMaxFailed  = "Failed to quote max purchase"

	// Health messages
	MsgCatalogNotLoaded = "item catalog not loaded"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Query parameter names
const (
	QueryParamMultiplier = "multiplier"
)
