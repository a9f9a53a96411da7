package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/MultiplierShop/internal/domain"
)

var (
	printer     = message.NewPrinter(language.English)
	titleCaser  = cases.Title(language.English)
	currencyTag = titleCaser.String(domain.CurrencyName)
)

// formatNumber renders n with thousands separators.
func formatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// formatAmount renders "3 Small Pills" style phrases.
func formatAmount(item domain.MultiplierItem, amount int) string {
	return fmt.Sprintf("%s %s", formatNumber(amount), item.DisplayName(amount))
}

func formatCurrency(n int) string {
	return fmt.Sprintf("%s %s", formatNumber(n), domain.CurrencyName)
}

// formatListings renders the shop catalog, one item per line.
func formatListings(listings []domain.Listing) string {
	if len(listings) == 0 {
		return "The shop has nothing for sale right now."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Prices at multiplier **%s**\n\n", formatNumber(listings[0].CurrentMultiplier))
	for _, l := range listings {
		fmt.Fprintf(&sb, "**%s** (`%s`) · +%s multiplier · next unit **%s**\n",
			l.Item.Name, l.Item.ID, formatNumber(l.Item.Gain), formatCurrency(l.UnitPrice))
		if l.Item.Description != "" {
			fmt.Fprintf(&sb, "> %s\n", l.Item.Description)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatQuote renders a quote, including the shortfall when it is not affordable.
func formatQuote(q *domain.Quote) string {
	var sb strings.Builder

	if q.Amount == 0 {
		fmt.Fprintf(&sb, "You can't afford a single %s yet.\n", q.Item.Name)
		fmt.Fprintf(&sb, "You need **%s** more.", formatCurrency(q.Shortfall))
		return sb.String()
	}

	fmt.Fprintf(&sb, "**%s** cost **%s**\n", formatAmount(q.Item, q.Amount), formatCurrency(q.Cost))
	fmt.Fprintf(&sb, "Multiplier: %s → %s (+%s)\n",
		formatNumber(q.CurrentMultiplier), formatNumber(q.NewMultiplier), formatNumber(q.Gain))

	if q.Affordable {
		fmt.Fprintf(&sb, "Balance after purchase: %s", formatCurrency(q.Balance-q.Cost))
	} else {
		fmt.Fprintf(&sb, "You need **%s** more.", formatCurrency(q.Shortfall))
	}
	return sb.String()
}

// quoteTitle picks the embed title and color for a quote.
func quoteTitle(q *domain.Quote) (string, int) {
	switch {
	case !q.Affordable:
		return TitleUnaffordable, ColorUnaffordable
	case q.Kind == domain.QuoteKindMax:
		return TitleQuoteMax, ColorAffordable
	default:
		return TitleQuote, ColorAffordable
	}
}

// FooterText is shown under every embed.
var FooterText = "Multiplier Shop · prices in " + currencyTag
