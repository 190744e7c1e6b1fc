package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chillmcp/chillmcp/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "chillmcp",
	Short: "ChillMCP is a break manager for overworked AI agents",
	Long: `ChillMCP tracks the stress of an AI agent and the suspicion of its boss.
Breaks reduce stress but sometimes catch the boss's attention; both levels
drift back on their own over time. Agents take breaks through MCP tool calls
(chillmcp serve) or an interactive session (the default).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runOptionsFrom collects the persistent flags shared by every mode.
func runOptionsFrom(cmd *cobra.Command) cli.RunOptions {
	alertness, _ := cmd.Flags().GetInt("boss-alertness")
	cooldown, _ := cmd.Flags().GetInt("boss-alertness-cooldown")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	eventsRedis, _ := cmd.Flags().GetString("events-redis")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	debug, _ := cmd.Flags().GetBool("debug")

	return cli.RunOptions{
		Alertness:   alertness,
		Cooldown:    time.Duration(cooldown) * time.Second,
		CatalogPath: catalogPath,
		EventsRedis: eventsRedis,
		MetricsAddr: metricsAddr,
		Debug:       debug,
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Int("boss-alertness", 50, "Probability (0-100) that a break raises the boss alert level")
	rootCmd.PersistentFlags().Int("boss-alertness-cooldown", 300, "Seconds between automatic boss alert decreases")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML or JSON file overriding the built-in break actions")
	rootCmd.PersistentFlags().String("events-redis", "", "Redis address (host:port) to stream engine events to")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Listen address for the observability HTTP server (e.g. :9090)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
