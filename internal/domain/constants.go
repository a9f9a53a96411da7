package domain

// Purchase limits
const (
	// MinPurchaseAmount is the smallest amount a quote may request.
	MinPurchaseAmount = 1
	// MaxPurchaseAmount caps a single purchase, including max-purchase quotes.
	MaxPurchaseAmount = 10_000
	// MaxCostAmount caps the amount a raw cost calculation may price.
	MaxCostAmount = 1_000_000
)

// CurrencyName is the unit balances and costs are expressed in.
const CurrencyName = "inches"
