// Package bfs provides a production-grade breadth-first search over any
// problem.Problem state space, returning a shortest action sequence from
// the initial state to a goal.
//
// What
//
//   - Explore states in non-decreasing distance (action count) from the
//     initial state.
//   - Returns a Result containing:
//   - Solution: actions from the initial state to the goal, in order
//   - Path: states along the solution, exactly len(Solution)+1 entries
//   - Expanded / Generated: search effort counters
//   - Deduplicates states: no state is expanded or enqueued twice.
//   - Goal test runs at generation time, so the first goal produced
//     closes the search.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Supports cancellation via WithContext and a progress hook via
//     WithOnExpand.
//
// Why
//
//   - Find minimum-action plans without weights, heuristics, or tuning:
//     on unit-cost domains BFS is complete and optimal.
//   - One engine serves every domain that implements problem.Problem,
//     from toy puzzles to implicit graphs that are never materialized.
//
// Determinism
//
//	Because problem.Actions enumerates in a stable order and Solve enqueues
//	children in that order, the expansion sequence, the counters, and the
//	returned Solution are fully reproducible run to run.
//
// Optimality
//
//	The frontier is a FIFO queue, so states are expanded in non-decreasing
//	depth. The first goal generated therefore has minimal depth: no shorter
//	action sequence reaches any goal.
//
// Complexity (b = branching factor, d = shallowest goal depth)
//
//   - Time:   O(b^d)  (each reachable state expanded at most once)
//   - Memory: O(b^d)  (arena, queue, and seen set)
//
// Usage
//
//	// Basic search with no options:
//	var p problem.Problem[State, Action] = myDomain
//	res, err := bfs.Solve(p)
//	if err != nil {
//	    // handle one of:
//	    // ErrNilProblem, ErrOptionViolation, ErrNoSolution,
//	    // a context error, or a wrapped problem.Result error
//	}
//
//	// With functional options (type arguments spell the state space when
//	// the argument's static type is not the problem.Problem interface):
//	res, err := bfs.Solve[State, Action](
//	    myDomain,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(20),
//	    bfs.WithOnExpand(func(depth, expanded int) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no depth limit, no-op hook.
//   - WithContext(ctx):  set a custom context for cancellation.
//   - WithMaxDepth(d):   bound solutions to at most d actions (d>0).
//   - WithOnExpand(fn):  hook after each dequeue, for progress reporting.
//
// Errors
//
//   - ErrNilProblem       if the problem is nil.
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. negative
//     MaxDepth).
//   - ErrNoSolution       if the reachable space holds no goal state.
//   - Wrapped problem.Result errors, still matching the original via
//     errors.Is (problem.ErrInvalidAction in particular).
//   - Context errors when the supplied context is cancelled.
package bfs
