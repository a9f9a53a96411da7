package catalog

import (
	"strings"

	"github.com/osse101/MultiplierShop/internal/domain"
)

// Catalog is an immutable, indexed set of multiplier items.
// Items are looked up by ID or display name, case-insensitively.
type Catalog struct {
	items []domain.MultiplierItem
	index map[string]int

	// searchKeys[i] belongs to items[keyOwner[i]]
	searchKeys []string
	keyOwner   []int
}

// New indexes items. Later items do not override earlier ones on key collisions.
func New(items []domain.MultiplierItem) *Catalog {
	c := &Catalog{
		items: make([]domain.MultiplierItem, len(items)),
		index: make(map[string]int, len(items)*2),
	}
	copy(c.items, items)

	for i, item := range c.items {
		for _, key := range []string{item.ID, item.Name} {
			k := normalize(key)
			if k == "" {
				continue
			}
			if _, exists := c.index[k]; !exists {
				c.index[k] = i
			}
			c.searchKeys = append(c.searchKeys, k)
			c.keyOwner = append(c.keyOwner, i)
		}
	}

	return c
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []domain.MultiplierItem {
	items := make([]domain.MultiplierItem, c.Len())
	if c != nil {
		copy(items, c.items)
	}
	return items
}

// Lookup finds an item by ID or name.
func (c *Catalog) Lookup(query string) (domain.MultiplierItem, bool) {
	if c == nil {
		return domain.MultiplierItem{}, false
	}
	i, ok := c.index[normalize(query)]
	if !ok {
		return domain.MultiplierItem{}, false
	}
	return c.items[i], true
}

// Resolve is Lookup with an error carrying suggestions for unknown items.
func (c *Catalog) Resolve(query string) (domain.MultiplierItem, error) {
	if item, ok := c.Lookup(query); ok {
		return item, nil
	}
	return domain.MultiplierItem{}, &domain.ItemNotFoundError{
		Query:       query,
		Suggestions: c.Suggest(query, MaxSuggestions),
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
