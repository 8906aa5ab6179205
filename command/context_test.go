package command

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func Test_NewContext(t *testing.T) {
	tests := []struct {
		name      string
		locale    discordgo.Locale
		expLocale discordgo.Locale
	}{
		{
			name:      "Interaction locale is kept",
			locale:    discordgo.Japanese,
			expLocale: discordgo.Japanese,
		},
		{
			name:      "Missing locale defaults to en-US",
			expLocale: discordgo.EnglishUS,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interaction := &discordgo.Interaction{Locale: tt.locale}

			ctx := NewContext(context.Background(), interaction, Options{}, nil, zap.NewNop())

			assert.Equal(t, tt.expLocale, ctx.Locale)
			assert.Same(t, interaction, ctx.Interaction)
		})
	}
}

func Test_Context_ResponseHelpers(t *testing.T) {
	ctx := NewContext(context.Background(), &discordgo.Interaction{}, Options{}, nil, zap.NewNop())

	msg := ctx.Message("hello")
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, msg.Type)
	assert.Equal(t, "hello", msg.Data.Content)

	ephemeral := ctx.EphemeralMessage("hush")
	assert.Equal(t, discordgo.MessageFlagsEphemeral, ephemeral.Data.Flags)

	deferred := ctx.Deferred()
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, deferred.Type)
	assert.Nil(t, deferred.Data)
}
