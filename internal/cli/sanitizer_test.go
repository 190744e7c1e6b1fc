package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeInputSizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"under limit", DefaultMaxInputSize - 1, false},
		{"exact limit", DefaultMaxInputSize, false},
		{"over limit", DefaultMaxInputSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeInput(strings.Repeat("a", tt.size))
			if tt.wantErr {
				if !errors.Is(err, ErrInputTooLarge) {
					t.Errorf("SanitizeInput() accepted %d bytes, err = %v", tt.size, err)
				}
			} else if err != nil {
				t.Errorf("SanitizeInput() rejected %d bytes: %v", tt.size, err)
			}
		})
	}
}

func TestSanitizeInputControlChars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain english", "I need a break", "I need a break"},
		{"korean phrase", "넷플릭스 보고 싶어", "넷플릭스 보고 싶어"},
		{"emoji", "🌴 stay chill", "🌴 stay chill"},
		{"newline and tab kept", "line1\nline2\ttabbed", "line1\nline2\ttabbed"},
		{"ansi escape stripped", "\x1b[31mcoffee\x1b[0m", "[31mcoffee[0m"},
		{"null byte stripped", "cof\x00fee", "coffee"},
		{"bell stripped", "ding\x07", "ding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			if err != nil {
				t.Fatalf("SanitizeInput(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("SanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeInputEnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")

	if _, err := SanitizeInput("12345678901"); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("11 bytes with limit 10: err = %v, want ErrInputTooLarge", err)
	}
	if _, err := SanitizeInput("12345"); err != nil {
		t.Errorf("5 bytes with limit 10: unexpected error %v", err)
	}
}

func TestSanitizeInputInvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("\xbd\xb2\x3d\xbc\x20\xe2\x8c\x98")
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("err = %v, want ErrInvalidUTF8", err)
	}
}
