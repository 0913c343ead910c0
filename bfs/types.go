// Package bfs provides tunable options and error definitions
// for breadth-first search over a problem.Problem state space.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Solve execution.
var (
	// ErrNilProblem is returned if a nil problem is passed.
	ErrNilProblem = errors.New("bfs: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoSolution is returned when the reachable state space is exhausted
	// without generating a goal state.
	ErrNoSolution = errors.New("bfs: no solution found")
)

// Option configures Solve behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize Solve execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called each time a state is dequeued for expansion.
	// Receives the node's depth (actions from the initial state) and the
	// running count of expanded nodes, this one included.
	OnExpand func(depth, expanded int)

	// MaxDepth, if > 0, bounds solutions to at most this many actions.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnExpand hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(int, int) {},
		MaxDepth: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds solutions to at most d actions.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnExpand registers a callback to run on each expansion.
func WithOnExpand(fn func(depth, expanded int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a successful search:
//   - Solution: actions from the initial state to the goal, in order.
//     Length 0 (never nil) when the initial state already meets the goal.
//   - Path: states along the solution, initial state first and goal last;
//     always exactly len(Solution)+1 entries.
//   - Expanded: number of states dequeued for expansion.
//   - Generated: number of distinct states materialized as search nodes,
//     the initial state included.
type Result[S, A comparable] struct {
	Solution  []A
	Path      []S
	Expanded  int
	Generated int
}
