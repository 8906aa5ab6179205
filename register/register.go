// Package register uploads declared commands to Discord. It is an offline
// utility, not part of the request-serving path.
package register

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"slashkit/command"
	"slashkit/pkg/discord"
)

const (
	loggerName = "cmd-register"

	removeFailErrorFormat = "following commands failed to remove: %s"
)

type Client struct {
	logger *zap.Logger

	appID   string
	guildID string

	discordSession discord.SessionIFace
}

// New returns a client registering commands for the given application.
// guildID may be empty for global commands.
func New(logger *zap.Logger, session discord.SessionIFace, appID, guildID string) *Client {
	return &Client{
		logger:         logger.Named(loggerName),
		appID:          appID,
		guildID:        guildID,
		discordSession: session,
	}
}

// Connect builds a client with its own session from a bot token.
func Connect(logger *zap.Logger, token, appID, guildID string) (*Client, error) {
	session, err := discordgo.New(fmt.Sprintf(discord.BotTokenFormat, token))
	if err != nil {
		return nil, err
	}
	return New(logger, session, appID, guildID), nil
}

// Register bulk-overwrites the application's command set with the given
// commands and groups. Overwriting replaces every previously registered
// command in the target scope.
func (c *Client) Register(commands []*command.Command, groups []*command.Group) error {
	payload := make([]*discordgo.ApplicationCommand, 0, len(commands)+len(groups))
	for _, cmd := range commands {
		payload = append(payload, cmd.ToApplicationCommand())
	}
	for _, group := range groups {
		payload = append(payload, group.ToApplicationCommand())
	}

	c.logger.Info("registering commands", zap.Int("TotalCommands", len(payload)))
	registered, err := c.discordSession.ApplicationCommandBulkOverwrite(c.appID, c.guildID, payload)
	if err != nil {
		c.logger.Error("could not register commands", zap.Error(err))
		return err
	}

	c.logger.Info("all commands were registered successfully", zap.Int("Registered", len(registered)))
	return nil
}

// Clear removes every command currently registered in the target scope.
func (c *Client) Clear() error {
	cmds, err := c.discordSession.ApplicationCommands(c.appID, c.guildID)
	if err != nil {
		return err
	}

	c.logger.Info("removing commands", zap.Int("TotalCommands", len(cmds)))
	fails := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		err := c.discordSession.ApplicationCommandDelete(c.appID, c.guildID, cmd.ID)
		if err != nil {
			c.logger.Error("could not delete command", zap.Error(err), zap.String("cmd", cmd.Name))
			fails = append(fails, cmd.Name)
		}
	}
	if len(fails) > 0 {
		return fmt.Errorf(removeFailErrorFormat, fails)
	}

	c.logger.Info("all commands were removed successfully")
	return nil
}
