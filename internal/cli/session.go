package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/chillmcp/chillmcp/internal/presentation/tui"
	"github.com/chillmcp/chillmcp/pkg/ports"
)

const inputPrompt = "\n명령어를 입력하세요 : "

type inputResult struct {
	text string
	err  error
}

// Session drives the interactive break loop. Input is pumped on a dedicated
// goroutine so the background drift keeps running (and cancellation stays
// responsive) while a read blocks on the user.
type Session struct {
	engine   ports.BreakEngine
	matcher  *Matcher
	reader   *bufio.Reader
	writer   io.Writer
	renderer tui.ContentRenderer

	inputChan chan inputResult
	startOnce sync.Once
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRenderer sets a markdown renderer for status reports. Without one the
// session prints plain text.
func WithRenderer(renderer tui.ContentRenderer) SessionOption {
	return func(s *Session) {
		s.renderer = renderer
	}
}

// NewSession creates a session reading commands from r and writing to w.
func NewSession(engine ports.BreakEngine, r io.Reader, w io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		engine:  engine,
		matcher: NewMatcher(engine.Catalog()),
		reader:  bufio.NewReader(r),
		writer:  w,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) initPump() {
	s.startOnce.Do(func() {
		s.inputChan = make(chan inputResult)
		go s.pump()
	})
}

func (s *Session) pump() {
	for {
		text, err := s.reader.ReadString('\n')

		// A final line without a trailing newline still counts.
		if text != "" {
			s.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(s.inputChan)
				return
			}
			s.inputChan <- inputResult{err: err}
			// Backoff to prevent CPU spikes on persistent read failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// input prompts and waits for the next line, honoring cancellation.
func (s *Session) input(ctx context.Context) (string, error) {
	s.initPump()

	for {
		// Only show the prompt if the context is not yet done
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(s.writer, inputPrompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-s.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			text := strings.TrimSpace(res.text)

			clean, err := SanitizeInput(text)
			if err != nil {
				// Rejected input is reprompted, never dispatched.
				fmt.Fprintf(s.writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

// Run executes the command loop until the user exits, input ends, or the
// context is cancelled. User-driven endings are not errors.
func (s *Session) Run(ctx context.Context) error {
	for {
		line, err := s.input(ctx)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				fmt.Fprintln(s.writer, "\n\n👋 EOF detected. Exiting...")
				return nil
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				fmt.Fprintln(s.writer, "\n\n👋 Interrupted. Exiting...")
				return nil
			default:
				return err
			}
		}
		if line == "" {
			continue
		}

		match := s.matcher.Match(line)
		switch match.Kind {
		case MatchExit:
			fmt.Fprint(s.writer, "\n👋 Thanks for using ChillMCP! Stay chill! 🌴\n\n")
			return nil
		case MatchStatus:
			s.printStatus(ctx)
		case MatchBreak:
			if err := s.runBreak(ctx, match.Action); err != nil {
				fmt.Fprintln(s.writer, "\n\n👋 Interrupted. Exiting...")
				return nil
			}
		default:
			s.printHelp()
		}
	}
}

func (s *Session) printStatus(ctx context.Context) {
	report := s.engine.Status(ctx)

	if s.renderer != nil {
		if out, err := s.renderer(tui.StatusMarkdown(report)); err == nil {
			fmt.Fprint(s.writer, out)
			return
		}
	}

	fmt.Fprintf(s.writer, "\n📊 Current Status:\n")
	fmt.Fprintf(s.writer, "   Stress Level: %d/100 (%s)\n", report.Stress, report.StressBand)
	fmt.Fprintf(s.writer, "   Boss Alert Level: %d/5 (%s)\n", report.Alert, report.AlertBand)
}

// runBreak dispatches one action and prints its outcome. A cancellation
// while the dispatch waits out a boss penalty is returned so the loop can
// end the session; other dispatch errors are shown and swallowed.
func (s *Session) runBreak(ctx context.Context, action string) error {
	fmt.Fprintf(s.writer, "\n✅ Matched: %s\n", action)
	fmt.Fprintln(s.writer, "🎬 Executing break activity...")

	result, err := s.engine.Dispatch(ctx, action)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		fmt.Fprintf(s.writer, "\n❌ Error: %v\n", err)
		return nil
	}

	rule := strings.Repeat("=", 70)
	fmt.Fprintf(s.writer, "\n%s\n", rule)
	fmt.Fprintf(s.writer, "%s\n\nBreak Summary: %s\nStress Level: %d\nBoss Alert Level: %d\n",
		result.Remark, result.Summary, result.Stress, result.Alert)
	fmt.Fprintln(s.writer, rule)

	report := s.engine.Status(ctx)
	fmt.Fprintf(s.writer, "\n📊 Current State After Break:\n")
	fmt.Fprintf(s.writer, "   Stress Level: %d/100\n", report.Stress)
	fmt.Fprintf(s.writer, "   Boss Alert Level: %d/5\n", report.Alert)
	return nil
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.writer, "\n❓ I couldn't understand that. Try something like:")
	fmt.Fprintln(s.writer, "   - '넷플릭스 보고 싶어' (watch Netflix)")
	fmt.Fprintln(s.writer, "   - 'I need a break' (take a break)")
	fmt.Fprintln(s.writer, "   - '커피 마시러 가자' (coffee mission)")
	fmt.Fprintln(s.writer, "   - '화장실' (bathroom break)")
	fmt.Fprintln(s.writer, "   - 'status' (check current state)")
}
