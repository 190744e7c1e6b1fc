/*
Package ports defines the interfaces that decouple the ChillMCP core from its
adapters.

# Key Interfaces

  - BreakEngine: The driving port consumed by the front ends (MCP, CLI, HTTP).
  - EventSink: The driven port for publishing operational events externally.
*/
package ports
