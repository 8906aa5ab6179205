package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

const (
	SessionApplicationCommandBulkOverwriteMethod = "ApplicationCommandBulkOverwrite"
	SessionApplicationCommandsMethod             = "ApplicationCommands"
	SessionApplicationCommandDeleteMethod        = "ApplicationCommandDelete"
	SessionChannelMessageSendMethod              = "ChannelMessageSend"
	SessionInteractionRespondMethod              = "InteractionRespond"
	SessionInteractionResponseEditMethod         = "InteractionResponseEdit"
	SessionFollowupMessageCreateMethod           = "FollowupMessageCreate"
)

// Ensure MockDiscordSession implements SessionIFace
var _ SessionIFace = (*MockDiscordSession)(nil)

type MockDiscordSession struct {
	mock.Mock
}

func (m *MockDiscordSession) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	args := m.Called(appID, guildID, commands)
	if respCmds := args.Get(0); respCmds != nil {
		return respCmds.([]*discordgo.ApplicationCommand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDiscordSession) ApplicationCommands(appID string, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	args := m.Called(appID, guildID)
	return args.Get(0).([]*discordgo.ApplicationCommand), args.Error(1)
}

func (m *MockDiscordSession) ApplicationCommandDelete(appID string, guildID string, cmdID string, options ...discordgo.RequestOption) error {
	args := m.Called(appID, guildID, cmdID)
	return args.Error(0)
}

func (m *MockDiscordSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, content)
	if respMsg := args.Get(0); respMsg != nil {
		return respMsg.(*discordgo.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDiscordSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	args := m.Called(interaction, resp)
	return args.Error(0)
}

func (m *MockDiscordSession) InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(interaction, newresp)
	if respMsg := args.Get(0); respMsg != nil {
		return respMsg.(*discordgo.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDiscordSession) FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(interaction, wait, data)
	if respMsg := args.Get(0); respMsg != nil {
		return respMsg.(*discordgo.Message), args.Error(1)
	}
	return nil, args.Error(1)
}
