package command

import (
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Group is a top-level container of subcommands and subcommand-groups.
// SubGroup holds only commands, so the two-level nesting limit Discord
// enforces is unrepresentable to exceed.
type Group struct {
	Name                     string
	Description              string
	NameLocalizations        map[discordgo.Locale]string
	DescriptionLocalizations map[discordgo.Locale]string
	DefaultMemberPermissions *int64

	Commands []*Command
	Groups   []*SubGroup
}

// SubGroup is a second-level container of subcommands.
type SubGroup struct {
	Name                     string
	Description              string
	NameLocalizations        map[discordgo.Locale]string
	DescriptionLocalizations map[discordgo.Locale]string

	Commands []*Command
}

func (g *Group) Validate() error {
	if !namePattern.MatchString(g.Name) {
		return fmt.Errorf("invalid group name: [%s]", g.Name)
	}
	if g.Description == "" {
		return fmt.Errorf("group [%s] has no description", g.Name)
	}
	if len(g.Commands) == 0 && len(g.Groups) == 0 {
		return fmt.Errorf("group [%s] has no subcommands", g.Name)
	}
	for _, cmd := range g.Commands {
		if err := cmd.Validate(); err != nil {
			return fmt.Errorf("group [%s]: %w", g.Name, err)
		}
	}
	for _, sub := range g.Groups {
		if err := sub.Validate(); err != nil {
			return fmt.Errorf("group [%s]: %w", g.Name, err)
		}
	}
	return nil
}

func (s *SubGroup) Validate() error {
	if !namePattern.MatchString(s.Name) {
		return fmt.Errorf("invalid subcommand group name: [%s]", s.Name)
	}
	if s.Description == "" {
		return fmt.Errorf("subcommand group [%s] has no description", s.Name)
	}
	if len(s.Commands) == 0 {
		return fmt.Errorf("subcommand group [%s] has no subcommands", s.Name)
	}
	for _, cmd := range s.Commands {
		if err := cmd.Validate(); err != nil {
			return fmt.Errorf("subcommand group [%s]: %w", s.Name, err)
		}
	}
	return nil
}

// resolve descends one or two levels, following the subcommand shape of
// the interaction's first option. Discord sends exactly one subcommand per
// invocation, so inspecting the first option is sufficient.
func (g *Group) resolve(opts []*discordgo.ApplicationCommandInteractionDataOption) (*Command, []*discordgo.ApplicationCommandInteractionDataOption, bool) {
	if len(opts) == 0 {
		return nil, nil, false
	}
	first := opts[0]

	switch first.Type {
	case discordgo.ApplicationCommandOptionSubCommand:
		for _, cmd := range g.Commands {
			if cmd.Name == first.Name {
				return cmd, first.Options, true
			}
		}

	case discordgo.ApplicationCommandOptionSubCommandGroup:
		for _, sub := range g.Groups {
			if sub.Name != first.Name {
				continue
			}
			if len(first.Options) == 0 {
				return nil, nil, false
			}
			nested := first.Options[0]
			if nested.Type != discordgo.ApplicationCommandOptionSubCommand {
				return nil, nil, false
			}
			for _, cmd := range sub.Commands {
				if cmd.Name == nested.Name {
					return cmd, nested.Options, true
				}
			}
			return nil, nil, false
		}
	}
	return nil, nil, false
}

// subcommandJSON is the serialized form of a command or subcommand group
// nested inside a group's options.
type subcommandJSON struct {
	Type                     discordgo.ApplicationCommandOptionType `json:"type"`
	Name                     string                                 `json:"name"`
	Description              string                                 `json:"description"`
	NameLocalizations        map[discordgo.Locale]string            `json:"name_localizations,omitempty"`
	DescriptionLocalizations map[discordgo.Locale]string            `json:"description_localizations,omitempty"`
	Options                  any                                    `json:"options"`
}

type groupJSON struct {
	Type                     discordgo.ApplicationCommandType `json:"type"`
	Name                     string                           `json:"name"`
	Description              string                           `json:"description"`
	NameLocalizations        map[discordgo.Locale]string      `json:"name_localizations,omitempty"`
	DescriptionLocalizations map[discordgo.Locale]string      `json:"description_localizations,omitempty"`
	DefaultMemberPermissions *int64                           `json:"default_member_permissions,omitempty"`
	Options                  []subcommandJSON                 `json:"options"`
}

// MarshalJSON serializes the group as a command whose options are
// subcommand and subcommand-group entries.
func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(groupJSON{
		Type:                     discordgo.ChatApplicationCommand,
		Name:                     g.Name,
		Description:              g.Description,
		NameLocalizations:        g.NameLocalizations,
		DescriptionLocalizations: g.DescriptionLocalizations,
		DefaultMemberPermissions: g.DefaultMemberPermissions,
		Options:                  g.subcommandEntries(),
	})
}

func (g *Group) subcommandEntries() []subcommandJSON {
	entries := make([]subcommandJSON, 0, len(g.Commands)+len(g.Groups))
	for _, cmd := range g.Commands {
		entries = append(entries, commandAsSubcommand(cmd))
	}
	for _, sub := range g.Groups {
		nested := make([]subcommandJSON, 0, len(sub.Commands))
		for _, cmd := range sub.Commands {
			nested = append(nested, commandAsSubcommand(cmd))
		}
		entries = append(entries, subcommandJSON{
			Type:                     discordgo.ApplicationCommandOptionSubCommandGroup,
			Name:                     sub.Name,
			Description:              sub.Description,
			NameLocalizations:        sub.NameLocalizations,
			DescriptionLocalizations: sub.DescriptionLocalizations,
			Options:                  nested,
		})
	}
	return entries
}

func commandAsSubcommand(cmd *Command) subcommandJSON {
	opts := cmd.Options
	if opts == nil {
		opts = []Option{}
	}
	return subcommandJSON{
		Type:                     discordgo.ApplicationCommandOptionSubCommand,
		Name:                     cmd.Name,
		Description:              cmd.Description,
		NameLocalizations:        cmd.NameLocalizations,
		DescriptionLocalizations: cmd.DescriptionLocalizations,
		Options:                  opts,
	}
}

// ToApplicationCommand converts the group for upload through the discordgo
// REST session.
func (g *Group) ToApplicationCommand() *discordgo.ApplicationCommand {
	cmd := &discordgo.ApplicationCommand{
		Type:                     discordgo.ChatApplicationCommand,
		Name:                     g.Name,
		Description:              g.Description,
		DefaultMemberPermissions: g.DefaultMemberPermissions,
	}
	if len(g.NameLocalizations) > 0 {
		locs := g.NameLocalizations
		cmd.NameLocalizations = &locs
	}
	if len(g.DescriptionLocalizations) > 0 {
		locs := g.DescriptionLocalizations
		cmd.DescriptionLocalizations = &locs
	}

	for _, sub := range g.Commands {
		cmd.Options = append(cmd.Options, commandAsSubcommandOption(sub))
	}
	for _, subGroup := range g.Groups {
		opt := &discordgo.ApplicationCommandOption{
			Type:                     discordgo.ApplicationCommandOptionSubCommandGroup,
			Name:                     subGroup.Name,
			Description:              subGroup.Description,
			NameLocalizations:        subGroup.NameLocalizations,
			DescriptionLocalizations: subGroup.DescriptionLocalizations,
		}
		for _, sub := range subGroup.Commands {
			opt.Options = append(opt.Options, commandAsSubcommandOption(sub))
		}
		cmd.Options = append(cmd.Options, opt)
	}
	return cmd
}

func commandAsSubcommandOption(cmd *Command) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionSubCommand,
		Name:                     cmd.Name,
		Description:              cmd.Description,
		NameLocalizations:        cmd.NameLocalizations,
		DescriptionLocalizations: cmd.DescriptionLocalizations,
	}
	for i := range cmd.Options {
		opt.Options = append(opt.Options, cmd.Options[i].toApplicationCommandOption())
	}
	return opt
}
