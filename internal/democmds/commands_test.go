package democmds

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"slashkit/command"
)

func invoke(t *testing.T, cmd *command.Command, raw ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {
	t.Helper()

	opts, err := command.Bind(cmd.Options, raw)
	require.NoError(t, err)

	ctx := command.NewContext(context.Background(), &discordgo.Interaction{}, opts, nil, zap.NewNop())
	rsp, err := cmd.Handler(ctx)
	require.NoError(t, err)
	return rsp
}

func rawOption(name string, optType discordgo.ApplicationCommandOptionType, value any) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  optType,
		Value: value,
	}
}

func Test_All_Valid(t *testing.T) {
	commands, groups := All()
	_, err := command.NewTree(commands, groups)
	assert.NoError(t, err)
}

func Test_Help(t *testing.T) {
	rsp := invoke(t, Help())
	assert.Equal(t, HelpMessage, rsp.Data.Content)
}

func Test_Echo(t *testing.T) {
	tests := []struct {
		name         string
		raw          []*discordgo.ApplicationCommandInteractionDataOption
		expContent   string
		expEphemeral bool
	}{
		{
			name: "Happy path",
			raw: []*discordgo.ApplicationCommandInteractionDataOption{
				rawOption("message", discordgo.ApplicationCommandOptionString, "hello"),
			},
			expContent: "hello",
		},
		{
			name: "Happy path - Private reply",
			raw: []*discordgo.ApplicationCommandInteractionDataOption{
				rawOption("message", discordgo.ApplicationCommandOptionString, "secret"),
				rawOption("private", discordgo.ApplicationCommandOptionBoolean, true),
			},
			expContent:   "secret",
			expEphemeral: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rsp := invoke(t, Echo(), tt.raw...)

			assert.Equal(t, tt.expContent, rsp.Data.Content)
			if tt.expEphemeral {
				assert.Equal(t, discordgo.MessageFlagsEphemeral, rsp.Data.Flags)
			} else {
				assert.Zero(t, rsp.Data.Flags)
			}
		})
	}
}

func Test_Animal(t *testing.T) {
	tests := []struct {
		name       string
		raw        []*discordgo.ApplicationCommandInteractionDataOption
		expContent string
	}{
		{
			name: "Happy path - Dog",
			raw: []*discordgo.ApplicationCommandInteractionDataOption{
				rawOption("name", discordgo.ApplicationCommandOptionInteger, float64(12)),
			},
			expContent: "dog image",
		},
		{
			name: "Happy path - Multiple cats",
			raw: []*discordgo.ApplicationCommandInteractionDataOption{
				rawOption("name", discordgo.ApplicationCommandOptionInteger, float64(36)),
				rawOption("count", discordgo.ApplicationCommandOptionInteger, float64(3)),
			},
			expContent: "cat image cat image cat image",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rsp := invoke(t, Animal(), tt.raw...)
			assert.Equal(t, tt.expContent, rsp.Data.Content)
		})
	}
}

func Test_Roll(t *testing.T) {
	cmd := Roll()
	opts, err := command.Bind(cmd.Options, []*discordgo.ApplicationCommandInteractionDataOption{
		rawOption("sides", discordgo.ApplicationCommandOptionInteger, float64(6)),
	})
	require.NoError(t, err)

	ctx := command.NewContext(context.Background(), &discordgo.Interaction{ID: "1059908384219806722"}, opts, nil, zap.NewNop())
	rsp, err := cmd.Handler(ctx)
	require.NoError(t, err)

	assert.Regexp(t, `^rolled a [1-6] \(d6\)$`, rsp.Data.Content)
}

func Test_Pets(t *testing.T) {
	group := Pets()

	require.Len(t, group.Commands, 1)
	rsp := invoke(t, group.Commands[0])
	assert.Equal(t, "cat, dog", rsp.Data.Content)

	require.Len(t, group.Groups, 2)
	catRsp := invoke(t, group.Groups[0].Commands[0])
	assert.Equal(t, "🐱", catRsp.Data.Content)
	dogRsp := invoke(t, group.Groups[1].Commands[0])
	assert.Equal(t, "🐶", dogRsp.Data.Content)
}
