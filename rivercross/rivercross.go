// Package rivercross models the peasant, wolf, goat and cabbage puzzle as
// a problem.Problem over bit-packed bank states.
package rivercross

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/problem"
)

// moves maps every safe, well-formed State to its legal crossings, in
// fixed order: peasant alone, then with cabbage, goat, wolf.
var moves = buildMoves()

// wellFormed reports whether every traveler stands on exactly one bank.
func wellFormed(s State) bool {
	right := uint8(s) & 0x0F
	left := uint8(s) >> 4

	return right^left == 0x0F
}

// safe reports whether nobody gets eaten in s: a bank without the peasant
// may not hold wolf and goat, or goat and cabbage, at the same time.
func safe(s State) bool {
	unattended := uint8(s) & 0x0F
	if s&rp != 0 {
		// peasant is on the right; the left bank is unsupervised
		unattended = uint8(s) >> 4
	}
	if unattended&(wolfBit|goatBit) == wolfBit|goatBit {
		return false
	}

	return unattended&(goatBit|cabbageBit) != goatBit|cabbageBit
}

// apply moves the crossers: their destination bits come straight from the
// action, their origin bits are the same masks mirrored onto the other
// nibble.
func apply(s State, a Action) State {
	origin := State(a>>4 | a<<4)

	return s&^origin | State(a)
}

// candidates lists the crossings physically available in s: the peasant
// rows to the opposite bank, alone or with one companion from its side.
// Fixed order: alone, cabbage, goat, wolf.
func candidates(s State) []Action {
	if s&lp != 0 {
		acts := []Action{CrossRightAlone}
		if s&lc != 0 {
			acts = append(acts, CrossRightWithCabbage)
		}
		if s&lg != 0 {
			acts = append(acts, CrossRightWithGoat)
		}
		if s&lw != 0 {
			acts = append(acts, CrossRightWithWolf)
		}

		return acts
	}

	acts := []Action{CrossLeftAlone}
	if s&rc != 0 {
		acts = append(acts, CrossLeftWithCabbage)
	}
	if s&rg != 0 {
		acts = append(acts, CrossLeftWithGoat)
	}
	if s&rw != 0 {
		acts = append(acts, CrossLeftWithWolf)
	}

	return acts
}

// buildMoves enumerates the sixteen well-formed states and keeps, for each
// safe one, the crossings that land in a safe state again.
func buildMoves() map[State][]Action {
	table := make(map[State][]Action, 10)
	banks := [2]Bank{Right, Left}
	var s State
	for i := 0; i < 16; i++ {
		s = Arrange(banks[i>>3&1], banks[i>>2&1], banks[i>>1&1], banks[i&1])
		if !safe(s) {
			continue
		}
		var acts []Action
		for _, a := range candidates(s) {
			if safe(apply(s, a)) {
				acts = append(acts, a)
			}
		}
		if len(acts) > 0 {
			table[s] = acts
		}
	}

	return table
}

// Puzzle is a river-crossing arrangement: the travelers start on initial's
// banks and the search succeeds when the layout equals goal.
// It implements problem.Problem[State, Action].
type Puzzle struct {
	initial State
	goal    State
}

// New builds a Puzzle between two well-formed arrangements. Unsafe but
// well-formed arrangements are accepted: they simply offer no crossings.
// Returns ErrBadState when a traveler stands on both banks or on neither.
func New(initial, goal State) (*Puzzle, error) {
	if !wellFormed(initial) {
		return nil, fmt.Errorf("%w: initial %s (0x%02X)", ErrBadState, initial, uint8(initial))
	}
	if !wellFormed(goal) {
		return nil, fmt.Errorf("%w: goal %s (0x%02X)", ErrBadState, goal, uint8(goal))
	}

	return &Puzzle{initial: initial, goal: goal}, nil
}

// Classic returns the canonical puzzle: everyone starts on the right bank
// and must end up on the left one.
func Classic() *Puzzle {
	return &Puzzle{initial: AllRight, goal: AllLeft}
}

// Initial returns the starting arrangement.
func (p *Puzzle) Initial() State { return p.initial }

// Goal returns the target arrangement.
func (p *Puzzle) Goal() State { return p.goal }

// Actions returns the safe crossings available in s, in fixed order:
// peasant alone, then with cabbage, goat, wolf. Malformed states and
// states where a traveler is already being eaten have none. The returned
// slice is shared: treat it as read-only.
func (p *Puzzle) Actions(s State) []Action { return moves[s] }

// Result applies crossing a to s. The action must be one of Actions(s);
// anything else reports a wrapped problem.ErrInvalidAction.
func (p *Puzzle) Result(s State, a Action) (State, error) {
	for _, legal := range moves[s] {
		if legal == a {
			return apply(s, a), nil
		}
	}

	return 0, fmt.Errorf("rivercross: crossing %s from %s: %w", a, s, problem.ErrInvalidAction)
}

// IsGoal reports whether every traveler reached the wanted bank.
func (p *Puzzle) IsGoal(s State) bool { return s == p.goal }
