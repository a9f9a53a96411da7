package shop

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute
)

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgInvalidQuantityFmt    = "invalid quantity: %d: %w"
	ErrMsgQuantityExceedsMaxFmt = "quantity %d exceeds maximum allowed (%d): %w"
	ErrMsgNegativeFieldFmt      = "%s must not be negative (got %d): %w"
	ErrMsgFieldTooLargeFmt      = "%s %d exceeds maximum allowed (%d): %w"
	ErrMsgEmptyItemFmt          = "item name is empty: %w"
)

// Formatted error messages for quotes
const (
	ErrMsgResolveItemFailedFmt   = "failed to resolve item %q: %w"
	ErrMsgInsufficientFundsFmt   = "%d %s cost %d, balance is %d: %w"
	ErrMsgCatalogNotLoadedDetail = "no item source configured: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgListItemsCalled      = "ListItems called"
	LogMsgQuoteCalled          = "Quote called"
	LogMsgQuoteMaxCalled       = "QuoteMax called"
	LogMsgQuoteUnaffordable    = "Quote exceeds balance"
	LogMsgQuoteIssued          = "Quote issued"
	LogMsgSearchCapped         = "Max-affordable search hit the iteration bound"
	LogMsgSearchCacheHit       = "Max-affordable result served from cache"
	LogMsgUnknownItemRequested = "Unknown item requested"
)

// ==================== Field Names ====================

// Input names used in validation errors
const (
	FieldAmount            = "amount"
	FieldBudget            = "available_budget"
	FieldBalance           = "balance"
	FieldCurrentMultiplier = "current_multiplier"
	FieldItemPrice         = "item_price"
	FieldItemGain          = "item_gain"
)
