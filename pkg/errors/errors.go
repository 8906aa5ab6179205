package errors

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ConfigError indicates invalid handler configuration. It is fatal at
// startup: no valid service state is possible.
type ConfigError struct {
	Field string
	Err   error
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %v", e.Field, e.Err)
}

func (e ConfigError) Unwrap() error {
	return e.Err
}

// CommandNotFoundError indicates the registered command tree disagrees
// with what Discord delivered. This is a deployment bug, not user input.
type CommandNotFoundError struct {
	Name string
}

func (e CommandNotFoundError) Error() string {
	return fmt.Sprintf("no registered command matches: [%s]", e.Name)
}

// MissingOptionError indicates a required option was absent from the
// interaction payload.
type MissingOptionError struct {
	Option string
}

func (e MissingOptionError) Error() string {
	return fmt.Sprintf("required option is missing: [%s]", e.Option)
}

// OptionTypeError indicates the payload's value tag does not match the
// statically expected type for an option.
type OptionTypeError struct {
	Option string
	Want   discordgo.ApplicationCommandOptionType
	Got    discordgo.ApplicationCommandOptionType
}

func (e OptionTypeError) Error() string {
	return fmt.Sprintf("wrong type for option [%s]: want %d, got %d", e.Option, e.Want, e.Got)
}

// OptionChoiceError indicates a value that matches none of an option's
// declared choices.
type OptionChoiceError struct {
	Option string
	Value  any
}

func (e OptionChoiceError) Error() string {
	return fmt.Sprintf("value %v for option [%s] matches no declared choice", e.Value, e.Option)
}

// OptionRangeError indicates a numeric value outside the option's declared
// min/max bounds.
type OptionRangeError struct {
	Option   string
	Value    float64
	Min, Max *float64
}

func (e OptionRangeError) Error() string {
	bounds := ""
	if e.Min != nil {
		bounds += fmt.Sprintf(" min=%v", *e.Min)
	}
	if e.Max != nil {
		bounds += fmt.Sprintf(" max=%v", *e.Max)
	}
	return fmt.Sprintf("value %v for option [%s] is out of range:%s", e.Value, e.Option, bounds)
}
