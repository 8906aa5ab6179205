package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	customError "slashkit/pkg/errors"
)

// Option is one named argument of a command. Its Type restricts which wire
// values it accepts; Choices, MinValue/MaxValue and ChannelTypes further
// narrow the accepted set.
type Option struct {
	Type                     discordgo.ApplicationCommandOptionType `json:"type"`
	Name                     string                                 `json:"name"`
	Description              string                                 `json:"description"`
	NameLocalizations        map[discordgo.Locale]string            `json:"name_localizations,omitempty"`
	DescriptionLocalizations map[discordgo.Locale]string            `json:"description_localizations,omitempty"`
	Choices                  []Choice                               `json:"choices,omitempty"`
	Required                 bool                                   `json:"required"`
	MinValue                 *float64                               `json:"min_value,omitempty"`
	MaxValue                 *float64                               `json:"max_value,omitempty"`
	ChannelTypes             []discordgo.ChannelType                `json:"channel_types,omitempty"`
}

func (o *Option) Validate() error {
	if !namePattern.MatchString(o.Name) {
		return fmt.Errorf("invalid option name: [%s]", o.Name)
	}
	if o.Description == "" {
		return fmt.Errorf("option [%s] has no description", o.Name)
	}

	switch o.Type {
	case discordgo.ApplicationCommandOptionString,
		discordgo.ApplicationCommandOptionInteger,
		discordgo.ApplicationCommandOptionBoolean,
		discordgo.ApplicationCommandOptionUser,
		discordgo.ApplicationCommandOptionChannel,
		discordgo.ApplicationCommandOptionRole,
		discordgo.ApplicationCommandOptionMentionable,
		discordgo.ApplicationCommandOptionNumber,
		discordgo.ApplicationCommandOptionAttachment:
	default:
		// Subcommand shapes are modeled by Group, not Option.
		return fmt.Errorf("option [%s] has unsupported type %d", o.Name, o.Type)
	}

	if len(o.Choices) > 0 && !o.allowsChoices() {
		return fmt.Errorf("option [%s] of type %d cannot declare choices", o.Name, o.Type)
	}
	for _, choice := range o.Choices {
		if err := choice.validateFor(o.Type); err != nil {
			return fmt.Errorf("option [%s]: %w", o.Name, err)
		}
	}

	if (o.MinValue != nil || o.MaxValue != nil) && !o.isNumeric() {
		return fmt.Errorf("option [%s] of type %d cannot declare numeric bounds", o.Name, o.Type)
	}
	if len(o.ChannelTypes) > 0 && o.Type != discordgo.ApplicationCommandOptionChannel {
		return fmt.Errorf("option [%s] of type %d cannot declare channel types", o.Name, o.Type)
	}
	return nil
}

func (o *Option) allowsChoices() bool {
	switch o.Type {
	case discordgo.ApplicationCommandOptionString,
		discordgo.ApplicationCommandOptionInteger,
		discordgo.ApplicationCommandOptionNumber:
		return true
	}
	return false
}

func (o *Option) isNumeric() bool {
	return o.Type == discordgo.ApplicationCommandOptionInteger ||
		o.Type == discordgo.ApplicationCommandOptionNumber
}

// ChoiceFor maps a wire primitive to the declared choice with the exact
// same value.
func (o *Option) ChoiceFor(value any) (Choice, error) {
	for _, choice := range o.Choices {
		if choiceValuesEqual(choice.Value, value) {
			return choice, nil
		}
	}
	return Choice{}, customError.OptionChoiceError{Option: o.Name, Value: value}
}

// coerce converts a raw interaction option into the typed value this
// option declares, enforcing the wire tag, choice membership and numeric
// bounds.
func (o *Option) coerce(raw *discordgo.ApplicationCommandInteractionDataOption) (any, error) {
	if raw.Type != o.Type {
		return nil, customError.OptionTypeError{Option: o.Name, Want: o.Type, Got: raw.Type}
	}

	var value any
	switch o.Type {
	case discordgo.ApplicationCommandOptionString:
		s, ok := raw.Value.(string)
		if !ok {
			return nil, customError.OptionTypeError{Option: o.Name, Want: o.Type, Got: tagOf(raw.Value)}
		}
		value = s

	case discordgo.ApplicationCommandOptionInteger:
		// JSON numbers decode as float64; integer options carry whole values.
		f, ok := raw.Value.(float64)
		if !ok {
			return nil, customError.OptionTypeError{Option: o.Name, Want: o.Type, Got: tagOf(raw.Value)}
		}
		value = int64(f)

	case discordgo.ApplicationCommandOptionNumber:
		f, ok := raw.Value.(float64)
		if !ok {
			return nil, customError.OptionTypeError{Option: o.Name, Want: o.Type, Got: tagOf(raw.Value)}
		}
		value = f

	case discordgo.ApplicationCommandOptionBoolean:
		b, ok := raw.Value.(bool)
		if !ok {
			return nil, customError.OptionTypeError{Option: o.Name, Want: o.Type, Got: tagOf(raw.Value)}
		}
		value = b

	default:
		// Snowflake-typed options carry the target entity's ID.
		s, ok := raw.Value.(string)
		if !ok {
			return nil, customError.OptionTypeError{Option: o.Name, Want: o.Type, Got: tagOf(raw.Value)}
		}
		value = s
	}

	if len(o.Choices) > 0 {
		if _, err := o.ChoiceFor(value); err != nil {
			return nil, err
		}
	}

	if o.isNumeric() && (o.MinValue != nil || o.MaxValue != nil) {
		var f float64
		switch v := value.(type) {
		case int64:
			f = float64(v)
		case float64:
			f = v
		}
		if (o.MinValue != nil && f < *o.MinValue) || (o.MaxValue != nil && f > *o.MaxValue) {
			return nil, customError.OptionRangeError{Option: o.Name, Value: f, Min: o.MinValue, Max: o.MaxValue}
		}
	}

	return value, nil
}

// tagOf derives the wire tag a raw dynamic value would carry. Used only to
// report mismatches.
func tagOf(value any) discordgo.ApplicationCommandOptionType {
	switch value.(type) {
	case string:
		return discordgo.ApplicationCommandOptionString
	case float64:
		return discordgo.ApplicationCommandOptionNumber
	case bool:
		return discordgo.ApplicationCommandOptionBoolean
	}
	return 0
}

func (o *Option) toApplicationCommandOption() *discordgo.ApplicationCommandOption {
	out := &discordgo.ApplicationCommandOption{
		Type:                     o.Type,
		Name:                     o.Name,
		Description:              o.Description,
		NameLocalizations:        o.NameLocalizations,
		DescriptionLocalizations: o.DescriptionLocalizations,
		Required:                 o.Required,
		MinValue:                 o.MinValue,
		ChannelTypes:             o.ChannelTypes,
	}
	if o.MaxValue != nil {
		out.MaxValue = *o.MaxValue
	}
	for _, choice := range o.Choices {
		out.Choices = append(out.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:              choice.Name,
			NameLocalizations: choice.NameLocalizations,
			Value:             choice.Value,
		})
	}
	return out
}
