package detail

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validator returns a message describing what is wrong with value, or "".
type Validator func(value string) string

// Required refuses blank values.
func Required() Validator {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "is required"
		}
		return ""
	}
}

// MaxLength refuses values longer than max runes.
func MaxLength(max int) Validator {
	return func(value string) string {
		if utf8.RuneCountInString(value) > max {
			return fmt.Sprintf("must be at most %d characters", max)
		}
		return ""
	}
}

func validate(value string, validators []Validator) (msgs []string) {
	for _, vld := range validators {
		msg := vld(value)
		if msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return
}
