package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Chat input is one command line; anything bigger is almost certainly a
// paste gone wrong. The cap can be raised through the environment.
const (
	DefaultMaxInputSize = 4096
	EnvMaxInputSize     = "CHILLMCP_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input line too long")
	ErrInvalidUTF8   = errors.New("input is not valid UTF-8")
)

// SanitizeInput scrubs a line of chat input before it reaches the matcher.
// Oversized lines and invalid UTF-8 are rejected outright; control
// characters other than \n, \t and \r are stripped so pasted escape
// sequences cannot corrupt the terminal or the session log.
func SanitizeInput(input string) (string, error) {
	limit := maxInputSize()
	if len(input) > limit {
		// Reject instead of truncating: a silently shortened line could
		// match a different action than the one the user typed.
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	needsStrip := false
	for _, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			needsStrip = true
			break
		}
	}
	if !needsStrip {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

func maxInputSize() int {
	if v := os.Getenv(EnvMaxInputSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxInputSize
}
