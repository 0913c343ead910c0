// Package problem defines the contract between a search domain and the
// engines that explore it.
//
// What
//
//   - Problem[S, A] describes a deterministic state space: an initial state,
//     the actions applicable in a state, a transition function, and a goal
//     test.
//   - Funcs[S, A] adapts plain closures to the Problem interface, so small
//     or throwaway domains need no named type.
//   - ErrInvalidAction signals a transition applied outside its domain.
//
// Why
//
//   - Engines (see the bfs package) should know nothing about rivers, grids
//     or puzzles. They see opaque states and actions and ask the Problem for
//     successors, so one engine serves every domain that fits the contract.
//   - Keeping the contract in its own package lets domains and engines
//     evolve independently and avoids import cycles.
//
// Determinism
//
//	Engines rely on Actions returning applicable actions in a stable order:
//	two calls with the same state must enumerate the same actions in the
//	same sequence. Implementations must not mutate their receiver.
//
// Usage
//
//	// Count up from 0 to 7 by steps of 1 or 2:
//	p := problem.Funcs[int, int]{
//	    InitialState: 0,
//	    ActionsFunc:  func(int) []int { return []int{1, 2} },
//	    ResultFunc:   func(s, a int) (int, error) { return s + a, nil },
//	    GoalFunc:     func(s int) bool { return s == 7 },
//	}
//
// Errors
//
//   - ErrInvalidAction reports a Result call with an action that is not
//     applicable in the given state.
package problem
