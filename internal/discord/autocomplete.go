package discord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// maxAutocompleteChoices is Discord's limit per response.
const maxAutocompleteChoices = 25

// HandleAutocomplete answers item name autocomplete for the shop commands
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "quote", "buymax":
		handleItemAutocomplete(s, i, client)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

func handleItemAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	focused := getFocusedOptionValue(i.ApplicationCommandData().Options)

	listings, err := client.GetShop(ctx, 0)
	if err != nil {
		slog.Error("Failed to get shop for autocomplete", "error", err)
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, l := range listings {
		if focused == "" ||
			strings.Contains(strings.ToLower(l.Item.Name), focused) ||
			strings.Contains(l.Item.ID, focused) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  l.Item.Name,
				Value: l.Item.ID,
			})
		}
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}

	if len(choices) == 0 {
		choices = []*discordgo.ApplicationCommandOptionChoice{
			{Name: "No matching items", Value: "none"},
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}

func getFocusedOptionValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Focused {
			return strings.ToLower(opt.StringValue())
		}
	}
	return ""
}
