package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chillmcp/chillmcp/internal/cli"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive break session",
	Long: `Starts ChillMCP in interactive mode: describe the break you want in plain
language (English or Korean) and the matching action is dispatched.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := cli.RunChat(ctx, runOptionsFrom(cmd)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	// Launching without a subcommand lands in the interactive session.
	rootCmd.Run = chatCmd.Run
}
