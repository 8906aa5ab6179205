// Package command models Discord chat-input commands: their declaration,
// JSON schema, two-level grouping, and the coercion of interaction option
// values into typed handler arguments.
package command

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/bwmarrin/discordgo"
)

// Discord command and option names: 1-32 lowercase ASCII letters, digits,
// hyphens and underscores.
var namePattern = regexp.MustCompile(`^[-_a-z0-9]{1,32}$`)

// HandlerFunc is the action bound to a command at registration time. It
// receives a per-request context carrying the interaction, its locale, the
// bound options and a token-bound REST session.
type HandlerFunc func(ctx *Context) (*discordgo.InteractionResponse, error)

// Command is a leaf, invocable unit. It is constructed once at process
// start and never mutated afterwards.
type Command struct {
	Name                     string
	Description              string
	NameLocalizations        map[discordgo.Locale]string
	DescriptionLocalizations map[discordgo.Locale]string
	DefaultMemberPermissions *int64

	// Options order is significant: it is the order shown to users.
	Options []Option

	Handler HandlerFunc
}

type commandJSON struct {
	Type                     discordgo.ApplicationCommandType        `json:"type"`
	Name                     string                                  `json:"name"`
	Description              string                                  `json:"description"`
	NameLocalizations        map[discordgo.Locale]string             `json:"name_localizations,omitempty"`
	DescriptionLocalizations map[discordgo.Locale]string             `json:"description_localizations,omitempty"`
	DefaultMemberPermissions *int64                                  `json:"default_member_permissions,omitempty"`
	Options                  []Option                                `json:"options"`
}

// MarshalJSON serializes the command in Discord's chat-input schema. The
// bound handler is never serialized.
func (c *Command) MarshalJSON() ([]byte, error) {
	opts := c.Options
	if opts == nil {
		opts = []Option{}
	}
	return json.Marshal(commandJSON{
		Type:                     discordgo.ChatApplicationCommand,
		Name:                     c.Name,
		Description:              c.Description,
		NameLocalizations:        c.NameLocalizations,
		DescriptionLocalizations: c.DescriptionLocalizations,
		DefaultMemberPermissions: c.DefaultMemberPermissions,
		Options:                  opts,
	})
}

func (c *Command) Validate() error {
	if !namePattern.MatchString(c.Name) {
		return fmt.Errorf("invalid command name: [%s]", c.Name)
	}
	if c.Description == "" {
		return fmt.Errorf("command [%s] has no description", c.Name)
	}
	if c.Handler == nil {
		return fmt.Errorf("command [%s] has no handler", c.Name)
	}

	seenOptional := false
	for i := range c.Options {
		opt := &c.Options[i]
		if err := opt.Validate(); err != nil {
			return fmt.Errorf("command [%s]: %w", c.Name, err)
		}
		if opt.Required && seenOptional {
			return fmt.Errorf("command [%s]: required option [%s] follows an optional one", c.Name, opt.Name)
		}
		if !opt.Required {
			seenOptional = true
		}
	}
	return nil
}

// ToApplicationCommand converts the command for upload through the
// discordgo REST session.
func (c *Command) ToApplicationCommand() *discordgo.ApplicationCommand {
	cmd := &discordgo.ApplicationCommand{
		Type:                     discordgo.ChatApplicationCommand,
		Name:                     c.Name,
		Description:              c.Description,
		DefaultMemberPermissions: c.DefaultMemberPermissions,
	}
	if len(c.NameLocalizations) > 0 {
		locs := c.NameLocalizations
		cmd.NameLocalizations = &locs
	}
	if len(c.DescriptionLocalizations) > 0 {
		locs := c.DescriptionLocalizations
		cmd.DescriptionLocalizations = &locs
	}
	for i := range c.Options {
		cmd.Options = append(cmd.Options, c.Options[i].toApplicationCommandOption())
	}
	return cmd
}
