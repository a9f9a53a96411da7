package shop

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/osse101/MultiplierShop/internal/domain"
	"github.com/osse101/MultiplierShop/internal/logger"
	"github.com/osse101/MultiplierShop/internal/metrics"
	"github.com/osse101/MultiplierShop/internal/pricing"
)

// ItemSource provides the multiplier items the shop sells.
type ItemSource interface {
	Items() []domain.MultiplierItem
	Resolve(query string) (domain.MultiplierItem, error)
}

// Service defines the interface for pricing and shop quote operations
type Service interface {
	// Cost prices amount units with explicit item parameters.
	Cost(ctx context.Context, amount, currentMultiplier, itemPrice, itemGain int) (cost, gain int, err error)
	// MaxAffordable finds the largest purchase a budget covers with explicit item parameters.
	MaxAffordable(ctx context.Context, budget, currentMultiplier, itemPrice, itemGain int) (SearchResult, error)

	ListItems(ctx context.Context, currentMultiplier int) ([]domain.Listing, error)
	// Quote prices amount units of a catalog item. When the balance does not cover the cost the
	// quote is still returned, together with an error wrapping domain.ErrInsufficientFunds.
	Quote(ctx context.Context, itemQuery string, amount, currentMultiplier, balance int) (*domain.Quote, error)
	// QuoteMax quotes the largest purchase of a catalog item the balance covers.
	QuoteMax(ctx context.Context, itemQuery string, currentMultiplier, balance int) (*domain.Quote, error)

	CacheStats() CacheStats
	Ready(ctx context.Context) error
}

// SearchResult is a max-affordable answer. Limited is set when the search stopped at its
// ceiling or iteration bound, so a larger amount may still fit the budget.
type SearchResult struct {
	pricing.Purchase
	Limited bool `json:"limited"`
}

// Config holds the service tuning knobs.
type Config struct {
	SearchCeiling int
	MaxIterations int
	Cache         CacheConfig
}

// DefaultConfig returns the service defaults.
func DefaultConfig() Config {
	return Config{
		SearchCeiling: pricing.DefaultSearchCeiling,
		MaxIterations: pricing.DefaultMaxIterations,
		Cache:         DefaultCacheConfig(),
	}
}

type service struct {
	items ItemSource
	cache *searchCache

	// searcher serves raw max-affordable requests; quoteSearcher is bounded by the purchase limit.
	searcher      pricing.Searcher
	quoteSearcher pricing.Searcher
}

// NewService creates a new shop service. items may be nil, in which case only the
// raw pricing operations work and Ready reports domain.ErrCatalogNotLoaded.
func NewService(items ItemSource, config Config) Service {
	return &service{
		items: items,
		cache: newSearchCache(config.Cache),
		searcher: pricing.Searcher{
			Ceiling:       config.SearchCeiling,
			MaxIterations: config.MaxIterations,
		},
		quoteSearcher: pricing.Searcher{
			Ceiling:       domain.MaxPurchaseAmount,
			MaxIterations: config.MaxIterations,
		},
	}
}

func (s *service) Cost(ctx context.Context, amount, currentMultiplier, itemPrice, itemGain int) (int, int, error) {
	if err := validateNonNegative(
		namedValue{FieldAmount, amount},
		namedValue{FieldCurrentMultiplier, currentMultiplier},
		namedValue{FieldItemPrice, itemPrice},
		namedValue{FieldItemGain, itemGain},
	); err != nil {
		return 0, 0, err
	}
	if err := validateAtMost(namedValue{FieldAmount, amount}, domain.MaxCostAmount); err != nil {
		return 0, 0, err
	}

	cost, gain := pricing.CostAndGain(amount, currentMultiplier, itemPrice, itemGain)
	return cost, gain, nil
}

func (s *service) MaxAffordable(ctx context.Context, budget, currentMultiplier, itemPrice, itemGain int) (SearchResult, error) {
	if err := validateNonNegative(
		namedValue{FieldBudget, budget},
		namedValue{FieldCurrentMultiplier, currentMultiplier},
		namedValue{FieldItemPrice, itemPrice},
		namedValue{FieldItemGain, itemGain},
	); err != nil {
		return SearchResult{}, err
	}

	return s.search(ctx, s.searcher, budget, currentMultiplier, itemPrice, itemGain), nil
}

func (s *service) ListItems(ctx context.Context, currentMultiplier int) ([]domain.Listing, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgListItemsCalled, "current_multiplier", currentMultiplier)

	if err := validateNonNegative(namedValue{FieldCurrentMultiplier, currentMultiplier}); err != nil {
		return nil, err
	}
	if s.items == nil {
		return nil, fmt.Errorf(ErrMsgCatalogNotLoadedDetail, domain.ErrCatalogNotLoaded)
	}

	items := s.items.Items()
	listings := make([]domain.Listing, len(items))
	for i, item := range items {
		unitPrice, _ := pricing.CostAndGain(1, currentMultiplier, item.Price, item.Gain)
		listings[i] = domain.Listing{
			Item:              item,
			CurrentMultiplier: currentMultiplier,
			UnitPrice:         unitPrice,
		}
	}
	return listings, nil
}

func (s *service) Quote(ctx context.Context, itemQuery string, amount, currentMultiplier, balance int) (*domain.Quote, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgQuoteCalled, "item", itemQuery, "amount", amount, "current_multiplier", currentMultiplier, "balance", balance)

	if err := validateItemQuery(itemQuery); err != nil {
		return nil, err
	}
	if err := validateQuantity(amount); err != nil {
		return nil, err
	}
	if err := validateNonNegative(
		namedValue{FieldCurrentMultiplier, currentMultiplier},
		namedValue{FieldBalance, balance},
	); err != nil {
		return nil, err
	}

	item, err := s.resolve(ctx, itemQuery)
	if err != nil {
		return nil, err
	}

	cost, gain := pricing.CostAndGain(amount, currentMultiplier, item.Price, item.Gain)
	quote := newQuote(domain.QuoteKindAmount, item, amount, cost, gain, currentMultiplier, balance)
	metrics.QuotesIssued.WithLabelValues(item.ID, string(quote.Kind)).Inc()

	if !quote.Affordable {
		log.Info(LogMsgQuoteUnaffordable, "item", item.ID, "amount", amount, "shortfall", quote.Shortfall)
		return quote, fmt.Errorf(ErrMsgInsufficientFundsFmt, amount, item.DisplayName(amount), cost, balance, domain.ErrInsufficientFunds)
	}

	log.Info(LogMsgQuoteIssued, "item", item.ID, "amount", amount, "cost", cost)
	return quote, nil
}

func (s *service) QuoteMax(ctx context.Context, itemQuery string, currentMultiplier, balance int) (*domain.Quote, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgQuoteMaxCalled, "item", itemQuery, "current_multiplier", currentMultiplier, "balance", balance)

	if err := validateItemQuery(itemQuery); err != nil {
		return nil, err
	}
	if err := validateNonNegative(
		namedValue{FieldCurrentMultiplier, currentMultiplier},
		namedValue{FieldBalance, balance},
	); err != nil {
		return nil, err
	}

	item, err := s.resolve(ctx, itemQuery)
	if err != nil {
		return nil, err
	}

	p := s.search(ctx, s.quoteSearcher, balance, currentMultiplier, item.Price, item.Gain)
	metrics.QuotesIssued.WithLabelValues(item.ID, string(domain.QuoteKindMax)).Inc()

	if p.Amount == 0 {
		// Not even one unit fits; report what the first unit would take.
		unitCost, _ := pricing.CostAndGain(1, currentMultiplier, item.Price, item.Gain)
		quote := newQuote(domain.QuoteKindMax, item, 0, 0, 0, currentMultiplier, balance)
		quote.Affordable = false
		quote.Shortfall = max(unitCost-balance, 0)

		log.Info(LogMsgQuoteUnaffordable, "item", item.ID, "amount", 0, "shortfall", quote.Shortfall)
		return quote, fmt.Errorf(ErrMsgInsufficientFundsFmt, 1, item.DisplayName(1), unitCost, balance, domain.ErrInsufficientFunds)
	}

	quote := newQuote(domain.QuoteKindMax, item, p.Amount, p.Cost, p.Gain, currentMultiplier, balance)
	log.Info(LogMsgQuoteIssued, "item", item.ID, "amount", p.Amount, "cost", p.Cost)
	return quote, nil
}

func (s *service) CacheStats() CacheStats {
	return s.cache.GetStats()
}

func (s *service) Ready(ctx context.Context) error {
	if s.items == nil || len(s.items.Items()) == 0 {
		return domain.ErrCatalogNotLoaded
	}
	return nil
}

// resolve looks an item up in the catalog, counting misses.
func (s *service) resolve(ctx context.Context, query string) (domain.MultiplierItem, error) {
	if s.items == nil {
		return domain.MultiplierItem{}, fmt.Errorf(ErrMsgCatalogNotLoadedDetail, domain.ErrCatalogNotLoaded)
	}

	item, err := s.items.Resolve(query)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			metrics.UnknownItemLookups.Inc()
			logger.FromContext(ctx).Info(LogMsgUnknownItemRequested, "item", query)
		}
		return domain.MultiplierItem{}, fmt.Errorf(ErrMsgResolveItemFailedFmt, query, err)
	}
	return item, nil
}

// search runs searcher through the result cache and records search metrics.
func (s *service) search(ctx context.Context, searcher pricing.Searcher, budget, currentMultiplier, itemPrice, itemGain int) SearchResult {
	key := searchKey{
		budget:     budget,
		multiplier: currentMultiplier,
		price:      itemPrice,
		gain:       itemGain,
		ceiling:    searcher.Ceiling,
	}

	if result, ok := s.cache.Get(key); ok {
		metrics.PricingSearches.WithLabelValues(metrics.SourceCache).Inc()
		logger.FromContext(ctx).Debug(LogMsgSearchCacheHit, "budget", budget, "amount", result.Amount)
		return result
	}

	p, stats := searcher.Search(budget, currentMultiplier, itemPrice, itemGain)

	metrics.PricingSearches.WithLabelValues(metrics.SourceComputed).Inc()
	metrics.PricingSearchIterations.Observe(float64(stats.Iterations))
	if stats.Capped {
		metrics.PricingSearchesCapped.Inc()
		logger.FromContext(ctx).Warn(LogMsgSearchCapped,
			"budget", budget,
			"current_multiplier", currentMultiplier,
			"iterations", stats.Iterations,
			"amount", p.Amount)
	}

	result := SearchResult{Purchase: p, Limited: stats.Limited()}
	s.cache.Set(key, result)
	return result
}

func newQuote(kind domain.QuoteKind, item domain.MultiplierItem, amount, cost, gain, currentMultiplier, balance int) *domain.Quote {
	quote := &domain.Quote{
		Kind:              kind,
		Item:              item,
		Amount:            amount,
		Cost:              cost,
		Gain:              gain,
		CurrentMultiplier: currentMultiplier,
		NewMultiplier:     saturatingAdd(currentMultiplier, gain),
		Balance:           balance,
		Affordable:        cost <= balance,
	}
	if !quote.Affordable {
		quote.Shortfall = cost - balance
	}
	return quote
}

func saturatingAdd(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}
