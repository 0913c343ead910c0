// Package lvlsolve is your in-memory playground for uninformed search:
// model a puzzle as states and actions, hand it to the breadth-first
// engine, and read back the shortest solution.
//
// 🚀 What is lvlsolve?
//
//	A small, generic, pure-Go toolkit that brings together:
//		• A polymorphic Problem contract: Initial, Actions, Result, IsGoal
//		• A generic BFS engine with depth limits, cancellation & hooks
//		• The classic peasant, wolf, goat & cabbage puzzle, bit-packed
//		• A demonstration CLI with YAML scenario files
//
// ✨ Why choose lvlsolve?
//
//   - Beginner-friendly – minimal API, intuitive naming
//   - Honest results – shortest solutions, explicit sentinel errors
//   - Generic – any comparable state & action types plug straight in
//   - Observable – expansion counters and an OnExpand hook
//
// Under the hood, everything is organized under three packages and a CLI:
//
//	problem/      the search contract every puzzle implements
//	bfs/          the breadth-first engine: frontier, dedup, reconstruction
//	rivercross/   the river-crossing state space & its safe-move table
//	cmd/lvlsolve  scenarios in YAML, crossings out, exit codes that tell
//
// Quick ASCII example:
//
//	-|PCGW → PG|CW → G|PCW → PCG|W
//	                             ↓
//	PCGW|- ← CW|PG ← PCW|G ← C|PGW
//
//	the classic crossing solved in seven moves, left bank | right bank,
//	never leaving wolf+goat or goat+cabbage alone.
//
// Dive into each package's doc.go for guarantees, complexity and usage.
//
//	go get github.com/katalvlaran/lvlsolve
package lvlsolve
