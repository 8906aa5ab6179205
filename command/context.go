package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"slashkit/pkg/discord"
)

// Context carries one invocation through a bound handler: the interaction,
// its locale, the coerced options and a token-bound REST session for
// follow-up calls. The session is nil when the handler was built without a
// bot token.
type Context struct {
	context.Context

	Interaction *discordgo.Interaction
	Locale      discordgo.Locale
	Options     Options
	Session     discord.SessionIFace
	Logger      *zap.Logger
}

func NewContext(ctx context.Context, interaction *discordgo.Interaction, opts Options, session discord.SessionIFace, logger *zap.Logger) *Context {
	locale := interaction.Locale
	if locale == "" {
		locale = discordgo.EnglishUS
	}
	return &Context{
		Context:     ctx,
		Interaction: interaction,
		Locale:      locale,
		Options:     opts,
		Session:     session,
		Logger:      logger,
	}
}

// Message responds with a channel message.
func (c *Context) Message(content string) *discordgo.InteractionResponse {
	return discord.MessageResponse(content)
}

// EphemeralMessage responds with a message visible only to the invoker.
func (c *Context) EphemeralMessage(content string) *discordgo.InteractionResponse {
	return discord.EphemeralResponse(content)
}

// Deferred acknowledges the interaction now so the handler can follow up
// through the REST session later.
func (c *Context) Deferred() *discordgo.InteractionResponse {
	rsp := discord.DeferredResponse
	return &rsp
}
