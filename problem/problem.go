// Package problem defines the state-space contract shared by search engines
// and the domains they explore.
package problem

import "errors"

// ErrInvalidAction is returned by Result when the action is not applicable
// in the given state.
var ErrInvalidAction = errors.New("problem: action not applicable in state")

// Problem describes a deterministic, fully observable state space.
//
// S is the state type and A the action type. Both must be comparable:
// engines deduplicate states as map keys and report actions by value.
// Implementations must be read-only (no method mutates the receiver) and
// Actions must enumerate in a stable order so searches stay reproducible.
type Problem[S, A comparable] interface {
	// Initial returns the state the search starts from.
	Initial() S

	// Actions returns the actions applicable in s, in a stable order.
	// A nil or empty slice marks a dead end.
	Actions(s S) []A

	// Result returns the state reached by applying a in s.
	// When a is not applicable in s it must return an error matching
	// ErrInvalidAction via errors.Is.
	Result(s S, a A) (S, error)

	// IsGoal reports whether s satisfies the goal.
	IsGoal(s S) bool
}

// Funcs adapts plain functions to the Problem interface. The zero value is
// usable: a nil ActionsFunc yields no actions, a nil GoalFunc never matches,
// and a nil ResultFunc rejects every action with ErrInvalidAction.
type Funcs[S, A comparable] struct {
	// InitialState is returned by Initial.
	InitialState S

	// ActionsFunc enumerates the actions applicable in a state.
	ActionsFunc func(s S) []A

	// ResultFunc applies an action to a state.
	ResultFunc func(s S, a A) (S, error)

	// GoalFunc reports whether a state is a goal.
	GoalFunc func(s S) bool
}

// Initial returns the configured start state.
func (f Funcs[S, A]) Initial() S { return f.InitialState }

// Actions returns ActionsFunc(s), or nil when no ActionsFunc is set.
func (f Funcs[S, A]) Actions(s S) []A {
	if f.ActionsFunc == nil {
		return nil
	}

	return f.ActionsFunc(s)
}

// Result applies a to s via ResultFunc, or reports ErrInvalidAction when no
// ResultFunc is set.
func (f Funcs[S, A]) Result(s S, a A) (S, error) {
	if f.ResultFunc == nil {
		var zero S
		return zero, ErrInvalidAction
	}

	return f.ResultFunc(s, a)
}

// IsGoal returns GoalFunc(s), or false when no GoalFunc is set.
func (f Funcs[S, A]) IsGoal(s S) bool {
	return f.GoalFunc != nil && f.GoalFunc(s)
}
