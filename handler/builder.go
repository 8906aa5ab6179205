// Package handler dispatches verified Discord interactions to registered
// commands. A Builder accumulates commands and credentials; Build freezes
// them into an immutable Handler.
package handler

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"slashkit/command"
	"slashkit/pkg/discord"
	customError "slashkit/pkg/errors"
)

type Builder struct {
	commands      []*command.Command
	groups        []*command.Group
	publicKey     string
	token         string
	applicationID string
	logger        *zap.Logger
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Command registers a top-level command.
func (b *Builder) Command(cmd *command.Command) *Builder {
	b.commands = append(b.commands, cmd)
	return b
}

// Group registers a top-level command group.
func (b *Builder) Group(group *command.Group) *Builder {
	b.groups = append(b.groups, group)
	return b
}

// PublicKey sets the application's hex-encoded Ed25519 public key. It is
// required at Build.
func (b *Builder) PublicKey(publicKey string) *Builder {
	b.publicKey = publicKey
	return b
}

// Token sets the bot token used for follow-up REST calls. It may be left
// empty when handlers never call back to Discord.
func (b *Builder) Token(token string) *Builder {
	b.token = token
	return b
}

func (b *Builder) ApplicationID(applicationID string) *Builder {
	b.applicationID = applicationID
	return b
}

func (b *Builder) Logger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// Build validates the accumulated configuration and returns an immutable
// Handler. Duplicate top-level names and invalid key material are
// configuration errors.
func (b *Builder) Build() (*Handler, error) {
	publicKey, err := discord.DecodePublicKey(b.publicKey)
	if err != nil {
		return nil, customError.ConfigError{Field: "public key", Err: err}
	}

	tree, err := command.NewTree(b.commands, b.groups)
	if err != nil {
		return nil, customError.ConfigError{Field: "commands", Err: err}
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Handler{
		logger:        logger,
		tree:          tree,
		publicKey:     publicKey,
		applicationID: b.applicationID,
	}

	// Token validation is deferred: it is only needed for outbound REST.
	if b.token != "" {
		session, err := discordgo.New(fmt.Sprintf(discord.BotTokenFormat, b.token))
		if err != nil {
			return nil, customError.ConfigError{Field: "token", Err: err}
		}
		h.session = session
	}

	return h, nil
}
