// Package bfs provides breadth-first search over a problem.Problem,
// returning a shortest action sequence from the initial state to a goal.
//
// Solve explores states in increasing distance from the initial state,
// with optional cancellation, depth limiting, and an expansion hook.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/problem"
)

// node is one entry of the search tree arena. Nodes live in a flat slice
// and refer to their parent by index, so dropping the slice releases the
// whole tree and reconstruction needs no per-node bookkeeping.
type node[S, A comparable] struct {
	state  S
	action A   // action that produced state; zero value for the root
	parent int // arena index of the parent; -1 for the root
	depth  int // actions from the initial state
}

// walker encapsulates mutable search state.
type walker[S, A comparable] struct {
	prob     problem.Problem[S, A]
	opts     Options
	arena    []node[S, A]
	queue    []int // arena indices awaiting expansion
	seen     map[S]bool
	expanded int
}

// Solve runs breadth-first search over p from p.Initial() until a goal
// state is generated, applying any number of functional Options.
//
// On success the Result carries a shortest solution: no action sequence
// shorter than Result.Solution reaches a goal. On failure the Result is
// nil and the error is ErrNilProblem, ErrOptionViolation, ErrNoSolution,
// a context error, or a wrapped problem.Result error.
func Solve[S, A comparable](p problem.Problem[S, A], opts ...Option) (*Result[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker and seed the arena with the root node
	w := &walker[S, A]{
		prob: p,
		opts: o,
		seen: make(map[S]bool),
	}
	var zero A
	root := p.Initial()
	w.push(root, zero, -1, 0)

	// A root that already meets the goal needs no expansion
	if p.IsGoal(root) {
		return w.solution(0), nil
	}

	// Main loop
	goal, err := w.loop()
	if err != nil {
		return nil, err
	}

	return w.solution(goal), nil
}

// push marks s seen, materializes its node in the arena, and enqueues it.
// Returns the new node's arena index.
func (w *walker[S, A]) push(s S, a A, parent, depth int) int {
	w.seen[s] = true
	idx := len(w.arena)
	w.arena = append(w.arena, node[S, A]{state: s, action: a, parent: parent, depth: depth})
	w.queue = append(w.queue, idx)

	return idx
}

// loop processes the queue until a goal is generated, the reachable space
// is exhausted, an expansion fails, or the context is cancelled.
// Returns the arena index of the goal node.
func (w *walker[S, A]) loop() (int, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		goal, found, err := w.expand(w.dequeue())
		if err != nil {
			return 0, err
		}
		if found {
			return goal, nil
		}
	}

	return 0, ErrNoSolution
}

// dequeue pops the first index, bumps the expansion counter, and invokes
// OnExpand.
func (w *walker[S, A]) dequeue() int {
	idx := w.queue[0]
	w.queue = w.queue[1:]
	w.expanded++
	w.opts.OnExpand(w.arena[idx].depth, w.expanded)

	return idx
}

// expand generates the children of the node at idx. Each child is goal
// tested as soon as it is generated: FIFO order guarantees the first goal
// generated closes a shortest solution. Children whose state was already
// seen are discarded without materializing a node.
func (w *walker[S, A]) expand(idx int) (int, bool, error) {
	// copy out: pushes below may relocate the arena backing array
	cur := w.arena[idx]
	nextDepth := cur.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return 0, false, nil
	}

	var child S
	var err error
	for _, a := range w.prob.Actions(cur.state) {
		// cancellation check inside action iteration
		select {
		case <-w.opts.Ctx.Done():
			return 0, false, w.opts.Ctx.Err()
		default:
		}

		child, err = w.prob.Result(cur.state, a)
		if err != nil {
			return 0, false, fmt.Errorf("bfs: Result error for action %v at %v: %w", a, cur.state, err)
		}
		// goal test at generation time, before the duplicate check
		if w.prob.IsGoal(child) {
			return w.push(child, a, idx, nextDepth), true, nil
		}
		// first time seen?
		if !w.seen[child] {
			w.push(child, a, idx, nextDepth)
		}
	}

	return 0, false, nil
}

// solution reconstructs the Result for the goal node at idx by walking
// parent links back to the root and reversing.
func (w *walker[S, A]) solution(idx int) *Result[S, A] {
	d := w.arena[idx].depth
	res := &Result[S, A]{
		Solution:  make([]A, 0, d),
		Path:      make([]S, 0, d+1),
		Expanded:  w.expanded,
		Generated: len(w.arena),
	}
	// build reversed: goal → root
	for i := idx; i != -1; i = w.arena[i].parent {
		res.Path = append(res.Path, w.arena[i].state)
		if w.arena[i].parent != -1 {
			res.Solution = append(res.Solution, w.arena[i].action)
		}
	}
	// reverse to get root → goal
	for i, j := 0, len(res.Solution)-1; i < j; i, j = i+1, j-1 {
		res.Solution[i], res.Solution[j] = res.Solution[j], res.Solution[i]
	}
	for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
		res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
	}

	return res
}
