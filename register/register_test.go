package register

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"slashkit/command"
	"slashkit/pkg/discord"
)

func noopHandler(ctx *command.Context) (*discordgo.InteractionResponse, error) {
	return ctx.Message("ok"), nil
}

func testDeclarations() ([]*command.Command, []*command.Group) {
	commands := []*command.Command{
		{Name: "help", Description: "Show help", Handler: noopHandler},
	}
	groups := []*command.Group{
		{
			Name:        "pets",
			Description: "Pet utilities",
			Commands: []*command.Command{
				{Name: "list", Description: "List pets", Handler: noopHandler},
			},
		},
	}
	return commands, groups
}

func Test_Register(t *testing.T) {
	mockErr := errors.New("mock err")

	tests := []struct {
		name         string
		overwriteErr error
		expErr       error
	}{
		{
			name: "Happy path",
		},
		{
			name:         "Sad path - Bulk overwrite fails",
			overwriteErr: mockErr,
			expErr:       mockErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commands, groups := testDeclarations()

			mockSession := &discord.MockDiscordSession{}
			mockSession.On(discord.SessionApplicationCommandBulkOverwriteMethod, "appid", "guildid", mock.Anything).
				Return([]*discordgo.ApplicationCommand{{}, {}}, tt.overwriteErr)

			c := New(zap.NewNop(), mockSession, "appid", "guildid")
			err := c.Register(commands, groups)

			assert.Equal(t, tt.expErr, err)

			// Both the plain command and the group upload as one payload
			calls := mockSession.Calls
			require.Len(t, calls, 1)
			payload := calls[0].Arguments.Get(2).([]*discordgo.ApplicationCommand)
			require.Len(t, payload, 2)
			assert.Equal(t, "help", payload[0].Name)
			assert.Equal(t, "pets", payload[1].Name)
			assert.Equal(t, discordgo.ApplicationCommandOptionSubCommand, payload[1].Options[0].Type)
		})
	}
}

func Test_Clear(t *testing.T) {
	mockErr := errors.New("mock err")
	registered := []*discordgo.ApplicationCommand{
		{ID: "1", Name: "help"},
		{ID: "2", Name: "pets"},
	}

	tests := []struct {
		name      string
		listErr   error
		deleteErr error
		expErr    bool
	}{
		{
			name: "Happy path",
		},
		{
			name:    "Sad path - Listing fails",
			listErr: mockErr,
			expErr:  true,
		},
		{
			name:      "Sad path - Deletion fails",
			deleteErr: mockErr,
			expErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSession := &discord.MockDiscordSession{}
			mockSession.On(discord.SessionApplicationCommandsMethod, "appid", "guildid").
				Return(registered, tt.listErr)
			mockSession.On(discord.SessionApplicationCommandDeleteMethod, "appid", "guildid", mock.Anything).
				Return(tt.deleteErr)

			c := New(zap.NewNop(), mockSession, "appid", "guildid")
			err := c.Clear()

			if tt.expErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				mockSession.AssertNumberOfCalls(t, discord.SessionApplicationCommandDeleteMethod, len(registered))
			}
		})
	}
}
