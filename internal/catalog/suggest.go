package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit item IDs that look like query, best match first.
// Substring matches rank ahead of fuzzy subsequence matches.
func (c *Catalog) Suggest(query string, limit int) []string {
	q := normalize(query)
	if q == "" || limit <= 0 || c.Len() == 0 {
		return nil
	}

	var ids []string
	seen := make(map[int]bool)
	add := func(owner int) {
		if seen[owner] || len(ids) >= limit {
			return
		}
		seen[owner] = true
		ids = append(ids, c.items[owner].ID)
	}

	for i, key := range c.searchKeys {
		if strings.Contains(key, q) || strings.Contains(q, key) {
			add(c.keyOwner[i])
		}
	}

	for _, match := range fuzzy.Find(q, c.searchKeys) {
		add(c.keyOwner[match.Index])
	}

	return ids
}
