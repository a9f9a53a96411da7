package pricing

import "math"

// Search defaults.
const (
	// InitialSearchMax is the upper bound the search starts from before it has seen an unaffordable amount.
	InitialSearchMax = 10

	// DefaultSearchCeiling is the largest amount DefaultSearcher will return.
	DefaultSearchCeiling = 1_000_000

	// DefaultMaxIterations bounds the number of cost evaluations per search.
	DefaultMaxIterations = 256
)

// Phase names the stage the search was in when it stopped.
type Phase string

const (
	// PhaseGrowth means no unaffordable amount was seen; the upper bound was still doubling.
	PhaseGrowth Phase = "growth"
	// PhaseBisection means the search was narrowing a bracket around the budget.
	PhaseBisection Phase = "bisection"
)

// Purchase is the result of an affordability search.
type Purchase struct {
	Amount int `json:"amount"`
	Cost   int `json:"cost"`
	Gain   int `json:"gain"`
}

// SearchStats describes how a search terminated.
// CeilingReached is set when the returned amount is the ceiling; amounts above it were never priced.
type SearchStats struct {
	Iterations     int   `json:"iterations"`
	Capped         bool  `json:"capped"`
	CeilingReached bool  `json:"ceiling_reached"`
	Phase          Phase `json:"phase"`
}

// Limited reports whether a larger amount might still be affordable.
func (s SearchStats) Limited() bool {
	return s.Capped || s.CeilingReached
}

// Searcher finds the largest affordable amount.
// Ceiling is inclusive; values <= 0 fall back to the defaults.
type Searcher struct {
	Ceiling       int
	MaxIterations int
}

// DefaultSearcher is used by MaxAffordable.
var DefaultSearcher = Searcher{
	Ceiling:       DefaultSearchCeiling,
	MaxIterations: DefaultMaxIterations,
}

// MaxAffordable returns the largest amount whose cost does not exceed budget, with its cost and gain.
func MaxAffordable(budget, currentMultiplier, itemPrice, itemGain int) Purchase {
	p, _ := DefaultSearcher.Search(budget, currentMultiplier, itemPrice, itemGain)
	return p
}

// Search grows the upper bound by doubling until an amount is unaffordable, then bisects.
// It stops once the midpoint repeats between two iterations.
func (s Searcher) Search(budget, currentMultiplier, itemPrice, itemGain int) (Purchase, SearchStats) {
	ceiling, maxIterations := s.limits()

	// max is exclusive once it has been clamped to ceiling+1, so ceiling itself stays reachable.
	limit := ceiling
	if ceiling < math.MaxInt {
		limit = ceiling + 1
	}

	maxReached := false
	minAmount := 0
	maxAmount := min(InitialSearchMax, limit)
	amount := maxAmount

	stats := SearchStats{Phase: PhaseGrowth}

	for stats.Iterations < maxIterations {
		stats.Iterations++

		previous := amount
		amount = minAmount + (maxAmount-minAmount)/2

		cost, gain := CostAndGain(amount, currentMultiplier, itemPrice, itemGain)

		if amount == previous {
			stats.CeilingReached = amount == ceiling
			return Purchase{Amount: amount, Cost: cost, Gain: gain}, stats
		}

		if cost > budget {
			maxAmount = amount
			maxReached = true
			stats.Phase = PhaseBisection
			continue
		}

		minAmount = amount
		if !maxReached {
			maxAmount = doubleClamped(maxAmount, limit)
		}
	}

	stats.Capped = true
	stats.CeilingReached = minAmount == ceiling
	cost, gain := CostAndGain(minAmount, currentMultiplier, itemPrice, itemGain)
	return Purchase{Amount: minAmount, Cost: cost, Gain: gain}, stats
}

func (s Searcher) limits() (ceiling, maxIterations int) {
	ceiling = s.Ceiling
	if ceiling <= 0 {
		ceiling = DefaultSearchCeiling
	}
	maxIterations = s.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return ceiling, maxIterations
}

func doubleClamped(v, limit int) int {
	if v > limit/2 {
		return limit
	}
	return v * 2
}
