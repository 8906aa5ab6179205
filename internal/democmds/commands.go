// Package democmds declares the example bot's command set. It exercises
// plain commands, typed options, choices, numeric bounds, the ephemeral
// flag and two-level grouping.
package democmds

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"slashkit/command"
)

const HelpMessage = "this is help message!"

// All returns the full demo command set as handed to the handler builder.
func All() ([]*command.Command, []*command.Group) {
	return []*command.Command{Help(), Echo(), Animal(), Roll()},
		[]*command.Group{Pets()}
}

func Help() *command.Command {
	return &command.Command{
		Name:        "help",
		Description: "Show bot help",
		Handler: func(ctx *command.Context) (*discordgo.InteractionResponse, error) {
			return ctx.Message(HelpMessage), nil
		},
	}
}

func Echo() *command.Command {
	return &command.Command{
		Name:        "echo",
		Description: "Repeat a message back",
		Options: []command.Option{
			stringOption("message", "What to repeat", true),
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "private",
				Description: "Only show the reply to you",
			},
		},
		Handler: func(ctx *command.Context) (*discordgo.InteractionResponse, error) {
			message, err := ctx.Options.String("message")
			if err != nil {
				return nil, err
			}
			if private, _ := ctx.Options.Boolean("private"); private {
				return ctx.EphemeralMessage(message), nil
			}
			return ctx.Message(message), nil
		},
	}
}

func Animal() *command.Command {
	maxCount := float64(8)
	return &command.Command{
		Name:        "animal",
		Description: "Show an animal image",
		Options: []command.Option{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "name",
				Description: "The animal you want to see",
				Required:    true,
				Choices: []command.Choice{
					command.IntegerChoice("Dog", 12),
					command.IntegerChoice("Cat", 36),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: "Image count",
				MaxValue:    &maxCount,
			},
		},
		Handler: func(ctx *command.Context) (*discordgo.InteractionResponse, error) {
			name, err := ctx.Options.Integer("name")
			if err != nil {
				return nil, err
			}
			count := int64(1)
			if ctx.Options.Has("count") {
				if count, err = ctx.Options.Integer("count"); err != nil {
					return nil, err
				}
			}

			image := "dog image "
			if name == 36 {
				image = "cat image "
			}
			return ctx.Message(strings.TrimSpace(strings.Repeat(image, int(count)))), nil
		},
	}
}

func Roll() *command.Command {
	minSides, maxSides := float64(2), float64(120)
	return &command.Command{
		Name:        "roll",
		Description: "Roll a die",
		Options: []command.Option{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "sides",
				Description: "How many sides the die has",
				Required:    true,
				MinValue:    &minSides,
				MaxValue:    &maxSides,
			},
		},
		Handler: func(ctx *command.Context) (*discordgo.InteractionResponse, error) {
			sides, err := ctx.Options.Integer("sides")
			if err != nil {
				return nil, err
			}
			// Interaction IDs are snowflakes: millisecond timestamp in the
			// high bits, good enough entropy for a demo die.
			roll := int64(1)
			if id := ctx.Interaction.ID; id != "" {
				var n int64
				for _, r := range id {
					n = n*10 + int64(r-'0')
				}
				roll = n%sides + 1
			}
			return ctx.Message(fmt.Sprintf("rolled a %d (d%d)", roll, sides)), nil
		},
	}
}

// Pets is a two-level group: pets -> {cat,dog} -> emoji.
func Pets() *command.Group {
	return &command.Group{
		Name:        "pets",
		Description: "Pet utilities",
		Commands: []*command.Command{
			{
				Name:        "list",
				Description: "List supported pets",
				Handler: func(ctx *command.Context) (*discordgo.InteractionResponse, error) {
					return ctx.Message("cat, dog"), nil
				},
			},
		},
		Groups: []*command.SubGroup{
			{
				Name:        "cat",
				Description: "Cat things",
				Commands: []*command.Command{
					emojiCommand("🐱"),
				},
			},
			{
				Name:        "dog",
				Description: "Dog things",
				Commands: []*command.Command{
					emojiCommand("🐶"),
				},
			},
		},
	}
}

func emojiCommand(emoji string) *command.Command {
	return &command.Command{
		Name:        "emoji",
		Description: "Show the pet emoji",
		Handler: func(ctx *command.Context) (*discordgo.InteractionResponse, error) {
			return ctx.Message(emoji), nil
		},
	}
}

func stringOption(name, description string, required bool) command.Option {
	return command.Option{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}
