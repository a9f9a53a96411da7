package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MultiplierShop/internal/catalog"
	"github.com/osse101/MultiplierShop/internal/config"
	"github.com/osse101/MultiplierShop/internal/shop"
)

// LoadCatalog loads and validates the multiplier item catalog at path.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	cat, err := catalog.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFmt, path, err)
	}

	slog.Info(LogMsgCatalogLoaded, "path", path, "items", cat.Len())
	return cat, nil
}

// ShopConfig maps application config onto the shop service's tuning knobs.
func ShopConfig(cfg *config.Config) shop.Config {
	return shop.Config{
		SearchCeiling: cfg.PricingSearchCeiling,
		MaxIterations: cfg.PricingMaxIterations,
		Cache: shop.CacheConfig{
			Size: cfg.QuoteCacheSize,
			TTL:  cfg.QuoteCacheTTL,
		},
	}
}
