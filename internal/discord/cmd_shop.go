package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MultiplierShop/internal/domain"
)

// Option names shared by the shop commands
const (
	OptionItem       = "item"
	OptionAmount     = "amount"
	OptionMultiplier = "multiplier"
	OptionBalance    = "balance"
)

var minZero = 0.0

func itemOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         OptionItem,
		Description:  "Multiplier item to buy",
		Required:     true,
		Autocomplete: true,
	}
}

func multiplierOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        OptionMultiplier,
		Description: "Your current multiplier (default: 0)",
		Required:    required,
		MinValue:    &minZero,
	}
}

func balanceOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        OptionBalance,
		Description: "How many " + domain.CurrencyName + " you have",
		Required:    true,
		MinValue:    &minZero,
	}
}

// ShopCommand lists the multiplier items and their next-unit prices
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse multiplier items and their prices",
		Options: []*discordgo.ApplicationCommandOption{
			multiplierOption(false),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			options := getOptions(i)
			listings, err := client.GetShop(ctx, options.Int(OptionMultiplier, 0))
			if err != nil {
				return nil, err
			}
			return createEmbed(TitleShop, formatListings(listings), ColorShop), nil
		})
	}

	return cmd, handler
}

// QuoteCommand prices a given amount of an item against a balance
func QuoteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minAmount := float64(domain.MinPurchaseAmount)

	cmd := &discordgo.ApplicationCommand{
		Name:        "quote",
		Description: "Price a purchase of multiplier items",
		Options: []*discordgo.ApplicationCommandOption{
			itemOption(),
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionAmount,
				Description: "How many to buy",
				Required:    true,
				MinValue:    &minAmount,
				MaxValue:    float64(domain.MaxPurchaseAmount),
			},
			balanceOption(),
			multiplierOption(false),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			options := getOptions(i)
			quote, err := client.Quote(ctx,
				options.String(OptionItem),
				options.Int(OptionAmount, domain.MinPurchaseAmount),
				options.Int(OptionMultiplier, 0),
				options.Int(OptionBalance, 0))
			if err != nil {
				return nil, err
			}
			return quoteEmbed(quote), nil
		})
	}

	return cmd, handler
}

// BuyMaxCommand finds the largest purchase of an item a balance covers
func BuyMaxCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buymax",
		Description: "Find the most multiplier items you can afford",
		Options: []*discordgo.ApplicationCommandOption{
			itemOption(),
			balanceOption(),
			multiplierOption(false),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			options := getOptions(i)
			quote, err := client.QuoteMax(ctx,
				options.String(OptionItem),
				options.Int(OptionMultiplier, 0),
				options.Int(OptionBalance, 0))
			if err != nil {
				return nil, err
			}
			return quoteEmbed(quote), nil
		})
	}

	return cmd, handler
}

func quoteEmbed(q *domain.Quote) *discordgo.MessageEmbed {
	title, color := quoteTitle(q)
	return createEmbed(title, formatQuote(q), color)
}
