package discord

import (
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/MultiplierShop/internal/domain"
)

func focusedItem(value string) *discordgo.ApplicationCommandInteractionDataOption {
	opt := stringOpt(OptionItem, value)
	opt.Focused = true
	return opt
}

func TestHandleAutocomplete(t *testing.T) {
	shake := domain.MultiplierItem{ID: "protein_shake", Name: "Protein Shake", Price: 120, Gain: 5}

	tests := []struct {
		name    string
		command string
		typed   string
		want    []string
		notWant []string
	}{
		{"empty input lists everything", "quote", "", []string{"small_pill", "protein_shake"}, nil},
		{"matches display name", "buymax", "shake", []string{"protein_shake"}, []string{"small_pill"}},
		{"matches id", "quote", "small_", []string{"small_pill"}, []string{"protein_shake"}},
		{"no match", "quote", "goat", []string{"No matching items"}, []string{"small_pill"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := SetupTestContext(t)
			tc.Mux.HandleFunc("GET "+PathShopItems, func(w http.ResponseWriter, r *http.Request) {
				WriteJSON(t, w, http.StatusOK, []domain.Listing{{Item: testPill()}, {Item: shake}})
			})

			i := newInteraction(discordgo.InteractionApplicationCommandAutocomplete, tt.command, focusedItem(tt.typed))
			HandleAutocomplete(tc.Session, i, tc.APIClient)

			resp := tc.DiscordMocks.Last(t, http.MethodPost)
			for _, want := range tt.want {
				assert.Contains(t, resp.Body, want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, resp.Body, notWant)
			}
		})
	}
}

func TestHandleAutocomplete_UnknownCommand(t *testing.T) {
	tc := SetupTestContext(t)

	HandleAutocomplete(tc.Session, newInteraction(discordgo.InteractionApplicationCommandAutocomplete, "ping"), tc.APIClient)

	assert.Empty(t, tc.DiscordMocks.Requests)
}
