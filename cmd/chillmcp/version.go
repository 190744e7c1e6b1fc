package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chillmcp/chillmcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of chillmcp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chillmcp version %s\n", strings.TrimSpace(chillmcp.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
