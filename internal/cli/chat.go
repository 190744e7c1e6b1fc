package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chillmcp/chillmcp"
	"github.com/chillmcp/chillmcp/internal/logging"
	"github.com/chillmcp/chillmcp/internal/presentation/tui"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the Stdout session UI).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// RunChat executes the interactive break session on stdin/stdout.
func RunChat(ctx context.Context, opts RunOptions) error {
	logger := createLogger(opts.Debug)

	app, err := NewApp(ctx, opts, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	tui.PrintBanner(strings.TrimSpace(chillmcp.Version))

	fmt.Printf("\n⚙️  Settings:\n")
	fmt.Printf("   Boss Alertness: %d%%\n", opts.Alertness)
	fmt.Printf("   Boss Alert Cooldown: %ds\n", int(opts.Cooldown.Seconds()))

	report := app.Engine.Status(ctx)
	fmt.Printf("\n📊 Current State:\n")
	fmt.Printf("   Stress Level: %d/100\n", report.Stress)
	fmt.Printf("   Boss Alert Level: %d/5\n", report.Alert)

	fmt.Println("\n💡 Usage:")
	fmt.Println("   - Describe the break you want in plain language")
	fmt.Println("   - e.g. '넷플릭스 보고 싶어', '커피 마시러 가자', 'I need a break'")
	fmt.Println("   - 'status' shows the current state")
	fmt.Println("   - 'exit' leaves the session")

	app.Engine.Start(ctx)

	session := NewSession(app.Engine, os.Stdin, os.Stdout, WithRenderer(tui.NewRenderer()))
	return session.Run(ctx)
}
