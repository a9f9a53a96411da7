package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MultiplierShop/internal/domain"
)

func testCatalog() *Catalog {
	return New([]domain.MultiplierItem{
		{ID: "small_pill", Name: "Small Pill", Plural: "Small Pills", Price: 10, Gain: 1},
		{ID: "protein_shake", Name: "Protein Shake", Plural: "Protein Shakes", Price: 120, Gain: 5},
		{ID: "growth_serum", Name: "Growth Serum", Plural: "Growth Serums", Price: 900, Gain: 25},
	})
}

func TestCatalog_Lookup(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		query  string
		wantID string
		wantOK bool
	}{
		{"small_pill", "small_pill", true},
		{"Small Pill", "small_pill", true},
		{"  PROTEIN SHAKE ", "protein_shake", true},
		{"GROWTH_SERUM", "growth_serum", true},
		{"pill", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			item, ok := c.Lookup(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, item.ID)
		})
	}
}

func TestCatalog_Items(t *testing.T) {
	c := testCatalog()

	items := c.Items()
	require.Len(t, items, 3)
	items[0].Name = "mutated"

	again, _ := c.Lookup("small_pill")
	assert.Equal(t, "Small Pill", again.Name, "Items returns a copy")
}

func TestCatalog_Nil(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Items())

	_, ok := c.Lookup("small_pill")
	assert.False(t, ok)
}

func TestCatalog_Resolve(t *testing.T) {
	c := testCatalog()

	t.Run("known item", func(t *testing.T) {
		item, err := c.Resolve("Growth Serum")
		require.NoError(t, err)
		assert.Equal(t, "growth_serum", item.ID)
	})

	t.Run("unknown item carries suggestions", func(t *testing.T) {
		_, err := c.Resolve("pill")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrItemNotFound))

		var notFound *domain.ItemNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "pill", notFound.Query)
		assert.Equal(t, []string{"small_pill"}, notFound.Suggestions)
	})
}

func TestCatalog_Suggest(t *testing.T) {
	c := testCatalog()

	t.Run("substring match", func(t *testing.T) {
		assert.Equal(t, []string{"protein_shake"}, c.Suggest("shake", MaxSuggestions))
	})

	t.Run("subsequence match", func(t *testing.T) {
		got := c.Suggest("grwth", MaxSuggestions)
		require.NotEmpty(t, got)
		assert.Equal(t, "growth_serum", got[0])
	})

	t.Run("limit is respected", func(t *testing.T) {
		assert.Len(t, c.Suggest("s", 2), 2)
	})

	t.Run("nothing similar", func(t *testing.T) {
		assert.Empty(t, c.Suggest("zzzz", MaxSuggestions))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Nil(t, c.Suggest("  ", MaxSuggestions))
	})
}
