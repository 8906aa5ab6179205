package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func Test_CommonResponses(t *testing.T) {
	assert.JSONEq(t, `{"type":1}`, string(PingResponseJson))
	assert.JSONEq(t, `{"type":5}`, string(DeferredResponseJson))
}

func Test_MessageResponse(t *testing.T) {
	rsp := MessageResponse("hello")
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, rsp.Type)
	assert.Equal(t, "hello", rsp.Data.Content)
	assert.Zero(t, rsp.Data.Flags)
}

func Test_EphemeralResponse(t *testing.T) {
	rsp := EphemeralResponse("hush")
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, rsp.Type)
	assert.Equal(t, "hush", rsp.Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, rsp.Data.Flags)
}
