package discord

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCommandsEqual(t *testing.T) {
	quote, _ := QuoteCommand()
	shop, _ := ShopCommand()

	t.Run("same set in any order", func(t *testing.T) {
		assert.True(t, commandsEqual(
			[]*discordgo.ApplicationCommand{quote, shop},
			[]*discordgo.ApplicationCommand{shop, quote},
		))
	})

	t.Run("different length", func(t *testing.T) {
		assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{quote}, []*discordgo.ApplicationCommand{quote, shop}))
	})

	t.Run("changed description", func(t *testing.T) {
		changed := *shop
		changed.Description = "something else"
		assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{&changed}, []*discordgo.ApplicationCommand{shop}))
	})

	t.Run("changed option", func(t *testing.T) {
		other, _ := QuoteCommand()
		other.Options[1].Required = false
		assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{other}, []*discordgo.ApplicationCommand{quote}))
	})
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"transport failure", errors.New("dial tcp: connection refused"), MsgConnectionError},
		{"not found without suggestions", &APIError{StatusCode: http.StatusNotFound}, MsgItemNotFound},
		{
			"not found with suggestions",
			&APIError{StatusCode: http.StatusNotFound, Suggestions: []string{"small_pill", "growth_serum"}},
			MsgItemNotFound + "\nDid you mean: **small_pill**, **growth_serum**?",
		},
		{"bad request", &APIError{StatusCode: http.StatusBadRequest, Message: "amount too large"}, MsgInvalidInput + "\namount too large"},
		{"unavailable", &APIError{StatusCode: http.StatusServiceUnavailable}, MsgShopUnavailable},
		{"other with message", &APIError{StatusCode: http.StatusInternalServerError, Message: "Something went wrong"}, "❌ Something went wrong"},
		{"other without message", &APIError{StatusCode: http.StatusTeapot}, MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.err))
		})
	}
}

func TestGetOptions(t *testing.T) {
	i := newCommandInteraction("quote", stringOpt(OptionItem, "small_pill"), intOpt(OptionAmount, 3))
	opts := getOptions(i)

	assert.Equal(t, "small_pill", opts.String(OptionItem))
	assert.Equal(t, 3, opts.Int(OptionAmount, 1))
	assert.Equal(t, 0, opts.Int(OptionMultiplier, 0))
	assert.Equal(t, "", opts.String("missing"))
}

func TestGetInteractionUser(t *testing.T) {
	guild := newCommandInteraction("ping")
	assert.Equal(t, "user-1", getInteractionUser(guild).ID)

	dm := newCommandInteraction("ping")
	dm.Member = nil
	dm.User = &discordgo.User{ID: "dm-user"}
	assert.Equal(t, "dm-user", getInteractionUser(dm).ID)
}

func TestCommandRegistry_Handle(t *testing.T) {
	tc := SetupTestContext(t)
	registry := NewCommandRegistry()

	called := 0
	registry.Register(&discordgo.ApplicationCommand{Name: "noop"}, func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		called++
	})

	before := commandCounter.Load()
	registry.Handle(tc.Session, newCommandInteraction("noop"), tc.APIClient)
	registry.Handle(tc.Session, newCommandInteraction("unknown"), tc.APIClient)

	assert.Equal(t, 1, called)
	assert.Equal(t, before+1, commandCounter.Load())
	assert.False(t, lastCommandTime().IsZero())
}
