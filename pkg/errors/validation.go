package errors

import (
	"regexp"
	"unicode"
)

// MaxLabelLength caps node labels. The interactive editor enforces the same
// limit on its text input.
const MaxLabelLength = 120

// ValidateLabel validates a user-supplied node label.
//
// The rules are intentionally conservative:
//   - No control characters (labels end up in JSON, DOT, and terminal output)
//   - Maximum length of MaxLabelLength characters
//
// An empty label is valid; creation falls back to an auto-generated one.
func ValidateLabel(label string) error {
	if len(label) > MaxLabelLength {
		return New(CodeInvalidInput, "label too long (max %d characters)", MaxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(CodeInvalidInput, "label contains control characters")
		}
	}
	return nil
}

// hexColorRegex matches 3- and 6-digit hex colors with a leading #.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a user-supplied node color. Colors are stored
// verbatim and emitted into SVG output, so only hex notation is accepted.
func ValidateColor(color string) error {
	if color == "" {
		return New(CodeInvalidInput, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(CodeInvalidInput, "invalid color %q (want #rgb or #rrggbb)", color)
	}
	return nil
}
