package command

import (
	"github.com/bwmarrin/discordgo"

	customError "slashkit/pkg/errors"
)

type boundValue struct {
	kind  discordgo.ApplicationCommandOptionType
	value any
}

// Options holds the coerced option values of one resolved invocation,
// keyed by option name. Optional options that were absent from the payload
// are simply not present.
type Options struct {
	values map[string]boundValue
}

// Bind coerces the raw interaction options against a command's declared
// options. It fails on a missing required option, a wire tag that does not
// match the declared type, a value outside a choice set, or a numeric
// value out of bounds. Binding is a pure transformation.
func Bind(declared []Option, raw []*discordgo.ApplicationCommandInteractionDataOption) (Options, error) {
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(raw))
	for _, opt := range raw {
		if _, ok := byName[opt.Name]; !ok {
			byName[opt.Name] = opt
		}
	}

	bound := Options{values: make(map[string]boundValue, len(declared))}
	for i := range declared {
		opt := &declared[i]
		rawOpt, ok := byName[opt.Name]
		if !ok {
			if opt.Required {
				return Options{}, customError.MissingOptionError{Option: opt.Name}
			}
			continue
		}
		value, err := opt.coerce(rawOpt)
		if err != nil {
			return Options{}, err
		}
		bound.values[opt.Name] = boundValue{kind: opt.Type, value: value}
	}
	return bound, nil
}

// Has reports whether the named option was supplied.
func (o Options) Has(name string) bool {
	_, ok := o.values[name]
	return ok
}

// Get returns the coerced value of the named option without type checking.
func (o Options) Get(name string) (any, bool) {
	v, ok := o.values[name]
	if !ok {
		return nil, false
	}
	return v.value, true
}

func (o Options) typed(name string, want discordgo.ApplicationCommandOptionType) (any, error) {
	v, ok := o.values[name]
	if !ok {
		return nil, customError.MissingOptionError{Option: name}
	}
	if v.kind != want {
		return nil, customError.OptionTypeError{Option: name, Want: want, Got: v.kind}
	}
	return v.value, nil
}

func (o Options) String(name string) (string, error) {
	v, err := o.typed(name, discordgo.ApplicationCommandOptionString)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (o Options) Integer(name string) (int64, error) {
	v, err := o.typed(name, discordgo.ApplicationCommandOptionInteger)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

func (o Options) Number(name string) (float64, error) {
	v, err := o.typed(name, discordgo.ApplicationCommandOptionNumber)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

func (o Options) Boolean(name string) (bool, error) {
	v, err := o.typed(name, discordgo.ApplicationCommandOptionBoolean)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Snowflake getters return the target entity's ID.

func (o Options) User(name string) (string, error) {
	return o.snowflake(name, discordgo.ApplicationCommandOptionUser)
}

func (o Options) Channel(name string) (string, error) {
	return o.snowflake(name, discordgo.ApplicationCommandOptionChannel)
}

func (o Options) Role(name string) (string, error) {
	return o.snowflake(name, discordgo.ApplicationCommandOptionRole)
}

func (o Options) Mentionable(name string) (string, error) {
	return o.snowflake(name, discordgo.ApplicationCommandOptionMentionable)
}

func (o Options) Attachment(name string) (string, error) {
	return o.snowflake(name, discordgo.ApplicationCommandOptionAttachment)
}

func (o Options) snowflake(name string, want discordgo.ApplicationCommandOptionType) (string, error) {
	v, err := o.typed(name, want)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
