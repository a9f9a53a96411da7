package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Validation errors (used for partial matches)
	ErrMsgInvalidQuantity = "quantity"

	// Catalog errors
	ErrMsgCatalogNotLoaded = "item catalog not loaded"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Catalog errors
	ErrCatalogNotLoaded = errors.New(ErrMsgCatalogNotLoaded)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ItemNotFoundError reports an unknown item together with the closest known item IDs.
type ItemNotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *ItemNotFoundError) Error() string {
	return ErrMsgItemNotFound + ": " + e.Query
}

// Unwrap lets errors.Is match ErrItemNotFound.
func (e *ItemNotFoundError) Unwrap() error {
	return ErrItemNotFound
}
