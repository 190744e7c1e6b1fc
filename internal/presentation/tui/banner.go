package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the interactive-mode header.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Palm-tree palette: teal rules around a green title.
	rule := termenv.String(strings.Repeat("=", 70)).Foreground(p.Color("#2dd4bf"))
	title := termenv.String("🌴 ChillMCP - AI Agent Break Manager 🌴").Foreground(p.Color("#34d399")).Bold()
	ver := termenv.String("v" + version).Foreground(p.Color("#a7f3d0")).Faint()

	fmt.Println()
	fmt.Println(rule)
	fmt.Printf("%s %s\n", title, ver)
	fmt.Println(rule)
}
