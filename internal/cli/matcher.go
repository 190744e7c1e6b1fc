package cli

import (
	"slices"
	"strings"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

// MatchKind classifies what a line of user input asks for.
type MatchKind int

const (
	// MatchNone means nothing matched; the session shows usage help.
	MatchNone MatchKind = iota
	// MatchBreak carries a catalog action to dispatch.
	MatchBreak
	// MatchStatus asks for the current status report.
	MatchStatus
	// MatchExit ends the session.
	MatchExit
)

// Match is the outcome of classifying one input line.
type Match struct {
	Kind   MatchKind
	Action string
}

var (
	exitWords   = []string{"exit", "quit", "q", "종료", "나가기"}
	statusWords = []string{"status", "state", "상태", "현황"}
)

// Matcher maps free-text input onto catalog actions by keyword containment.
type Matcher struct {
	catalog domain.Catalog
}

// NewMatcher builds a matcher over the given catalog. Catalog order matters:
// the first action with a matching keyword wins, so a broad keyword early in
// the catalog shadows later actions.
func NewMatcher(catalog domain.Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Match classifies one line of input. Exit and status words must match the
// whole line; action keywords match anywhere inside it.
func (m *Matcher) Match(input string) Match {
	command := strings.ToLower(strings.TrimSpace(input))
	if command == "" {
		return Match{Kind: MatchNone}
	}
	if slices.Contains(exitWords, command) {
		return Match{Kind: MatchExit}
	}
	if slices.Contains(statusWords, command) {
		return Match{Kind: MatchStatus}
	}
	for _, action := range m.catalog {
		for _, keyword := range action.Keywords {
			if strings.Contains(command, strings.ToLower(keyword)) {
				return Match{Kind: MatchBreak, Action: action.Name}
			}
		}
	}
	return Match{Kind: MatchNone}
}
