package discord

import (
	"encoding/json"

	"github.com/bwmarrin/discordgo"
)

var (
	PingResponse = discordgo.InteractionResponse{
		Type: discordgo.InteractionResponsePong,
	}
	DeferredResponse = discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}

	PingResponseJson     []byte
	DeferredResponseJson []byte
)

// Marshal JSON for common responses
func init() {
	var err error

	PingResponseJson, err = json.Marshal(PingResponse)
	if err != nil {
		panic(err)
	}

	DeferredResponseJson, err = json.Marshal(DeferredResponse)
	if err != nil {
		panic(err)
	}
}

// MessageResponse builds a channel-message response with the given content.
func MessageResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}
}

// EphemeralResponse builds a channel-message response visible only to the
// invoking user.
func EphemeralResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
