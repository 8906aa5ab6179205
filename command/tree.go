package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Tree is the immutable registry of top-level commands and groups. It is
// built once at startup and safe for concurrent reads.
type Tree struct {
	commands []*Command
	groups   []*Group
}

// NewTree validates every declaration and rejects duplicate top-level
// names. Commands and groups share one namespace.
func NewTree(commands []*Command, groups []*Group) (*Tree, error) {
	seen := make(map[string]struct{}, len(commands)+len(groups))

	for _, cmd := range commands {
		if err := cmd.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[cmd.Name]; ok {
			return nil, fmt.Errorf("duplicate command name: [%s]", cmd.Name)
		}
		seen[cmd.Name] = struct{}{}
	}
	for _, group := range groups {
		if err := group.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[group.Name]; ok {
			return nil, fmt.Errorf("duplicate command name: [%s]", group.Name)
		}
		seen[group.Name] = struct{}{}
	}

	return &Tree{commands: commands, groups: groups}, nil
}

// Commands returns the top-level commands in registration order.
func (t *Tree) Commands() []*Command {
	return t.commands
}

// Groups returns the top-level groups in registration order.
func (t *Tree) Groups() []*Group {
	return t.groups
}

// Resolve maps interaction data to the leaf command it targets and the raw
// options belonging to that leaf. ok is false when the registered tree
// disagrees with what Discord delivered.
func (t *Tree) Resolve(data discordgo.ApplicationCommandInteractionData) (cmd *Command, opts []*discordgo.ApplicationCommandInteractionDataOption, ok bool) {
	for _, cmd := range t.commands {
		if cmd.Name == data.Name {
			return cmd, data.Options, true
		}
	}
	for _, group := range t.groups {
		if group.Name == data.Name {
			return group.resolve(data.Options)
		}
	}
	return nil, nil, false
}
