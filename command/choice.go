package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Choice is one (display-name, value) pair attached to an option. The
// value variant must match the owning option's declared type.
type Choice struct {
	Name              string                      `json:"name"`
	NameLocalizations map[discordgo.Locale]string `json:"name_localizations,omitempty"`
	Value             any                         `json:"value"`
}

func StringChoice(name, value string) Choice {
	return Choice{Name: name, Value: value}
}

func IntegerChoice(name string, value int64) Choice {
	return Choice{Name: name, Value: value}
}

func NumberChoice(name string, value float64) Choice {
	return Choice{Name: name, Value: value}
}

func (c Choice) validateFor(optionType discordgo.ApplicationCommandOptionType) error {
	var want discordgo.ApplicationCommandOptionType
	switch c.Value.(type) {
	case string:
		want = discordgo.ApplicationCommandOptionString
	case int, int64:
		want = discordgo.ApplicationCommandOptionInteger
	case float64:
		want = discordgo.ApplicationCommandOptionNumber
	default:
		return fmt.Errorf("choice [%s] has unsupported value type %T", c.Name, c.Value)
	}
	if want != optionType {
		return fmt.Errorf("choice [%s] value type %T does not match option type %d", c.Name, c.Value, optionType)
	}
	return nil
}

// choiceValuesEqual compares a declared choice value against a coerced wire
// value. Integer values compare across int64/float64 representations.
func choiceValuesEqual(declared, got any) bool {
	switch d := declared.(type) {
	case string:
		g, ok := got.(string)
		return ok && d == g
	case int:
		return numericEqual(float64(d), got)
	case int64:
		return numericEqual(float64(d), got)
	case float64:
		return numericEqual(d, got)
	}
	return false
}

func numericEqual(declared float64, got any) bool {
	switch g := got.(type) {
	case int64:
		return declared == float64(g)
	case float64:
		return declared == g
	}
	return false
}
