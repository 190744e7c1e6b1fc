/*
Package chillmcp is a break state engine for AI agents: it tracks an agent's
stress and its boss's suspicion as two clamped counters, and lets the agent
trade one against the other by taking breaks.

It exposes the engine over the Model Context Protocol (one tool per break
action) and as an interactive chat session, with the same core semantics
behind both.

# Concept

The engine owns two counters. Stress (0-100, starts at 50) climbs by one
point per minute on its own and drops when the agent takes a break. The boss
alert level (0-5, starts at 0) may climb by one on every break, with a
configurable probability, and cools down by one per configurable interval.
When the boss alert level hits its ceiling, every break stalls for a fixed
20 second penalty before it is served. Background drift never waits on
anything: a penalty in progress does not pause the clock.

# Key Features

  - Eight built-in break actions, from watch_netflix to deep_thinking, each
    with its own relief range and flavor remarks.
  - A configurable catalog: deployments can replace the built-in actions with
    their own YAML or JSON file.
  - Lifecycle hooks for structured logging, metrics and event publication,
    all observational: a slow or broken observer cannot change outcomes.
  - Safe for concurrent use; every counter write clamps to its range.

# Usage

Initialize the engine, start its drift loops, and dispatch breaks:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/chillmcp/chillmcp"
	)

	func main() {
		eng, err := chillmcp.New(
			chillmcp.WithBossAlertness(30),
		)
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		eng.Start(ctx)

		res, err := eng.Dispatch(ctx, "coffee_mission")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Remark)
		fmt.Printf("stress %d/100, boss alert %d/5\n", res.Stress, res.Alert)
	}

The cmd/chillmcp binary wires this engine to an MCP server (stdio or SSE) and
to an interactive terminal session.
*/
package chillmcp
