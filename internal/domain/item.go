package domain

// MultiplierItem is a shop item that permanently raises a player's multiplier.
// Its price grows with the multiplier the player already owns.
type MultiplierItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Plural      string `json:"plural"`
	Description string `json:"description"`
	Price       int    `json:"price"` // Cost-per-unit scaling factor
	Gain        int    `json:"gain"`  // Multiplier gained per unit
}

// DisplayName returns the singular or plural name for amount.
func (i MultiplierItem) DisplayName(amount int) string {
	if amount == 1 || i.Plural == "" {
		return i.Name
	}
	return i.Plural
}

// Listing is a catalog item priced for one unit at a given multiplier.
type Listing struct {
	Item              MultiplierItem `json:"item"`
	CurrentMultiplier int            `json:"current_multiplier"`
	UnitPrice         int            `json:"unit_price"`
}

// QuoteKind distinguishes quotes for a requested amount from max-purchase quotes.
type QuoteKind string

const (
	QuoteKindAmount QuoteKind = "amount"
	QuoteKindMax    QuoteKind = "max"
)

// Quote prices a purchase of a multiplier item against a balance.
type Quote struct {
	Kind              QuoteKind      `json:"kind"`
	Item              MultiplierItem `json:"item"`
	Amount            int            `json:"amount"`
	Cost              int            `json:"cost"`
	Gain              int            `json:"gain"`
	CurrentMultiplier int            `json:"current_multiplier"`
	NewMultiplier     int            `json:"new_multiplier"`
	Balance           int            `json:"balance"`
	Affordable        bool           `json:"affordable"`
	Shortfall         int            `json:"shortfall,omitempty"` // How much more is needed when not affordable
}
