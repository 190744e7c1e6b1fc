package chillmcp

import _ "embed"

// Version is the module version, kept in the VERSION file at the repo root.
// Callers should strings.TrimSpace it before display.
//
//go:embed VERSION
var Version string
