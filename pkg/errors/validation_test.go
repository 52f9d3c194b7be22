package errors

import (
	"strings"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"empty", "", false},
		{"simple", "auth service", false},
		{"unicode", "Ökosystem ☀", false},
		{"max length", strings.Repeat("a", MaxLabelLength), false},
		{"too long", strings.Repeat("a", MaxLabelLength+1), true},
		{"newline", "two\nlines", true},
		{"tab", "a\tb", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if err != nil && !Is(err, CodeInvalidInput) {
				t.Errorf("code = %q, want INVALID_INPUT", GetCode(err))
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"short hex", "#abc", false},
		{"long hex", "#00AAff", false},
		{"empty", "", true},
		{"no hash", "00aaff", true},
		{"named color", "red", true},
		{"wrong length", "#abcd", true},
		{"non-hex digit", "#00aagg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}
