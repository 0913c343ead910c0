// Package rivercross models the classic river-crossing puzzle: a peasant
// must ferry a wolf, a goat and a cabbage across a river in a boat that
// holds the peasant plus at most one passenger. Left unattended, the wolf
// eats the goat and the goat eats the cabbage. The package exposes the
// puzzle as a problem.Problem[State, Action], ready for bfs.Solve.
//
// Encoding
//
//	A State is one byte holding both banks: the low nibble is the right
//	bank, the high nibble the left bank, one bit per traveler on each side.
//
//	    bit:  7    6    5    4    3    2    1    0
//	          LP   LC   LG   LW   RP   RC   RG   RW
//	          └── left bank ───┘   └── right bank ──┘
//
//	A well-formed state has each traveler on exactly one bank, so the two
//	nibbles XOR to 0b1111. An Action reuses the vocabulary: its bits are
//	the destination-side bits of whoever crosses, and applying it sets
//	those bits and clears the mirrored origin bits. CrossLeftWithGoat is
//	LP|LG; applied to "-|PCGW" it yields "PG|CW".
//
// Safety
//
//	Of the sixteen well-formed states, ten are safe (nobody gets eaten).
//	The legal-move table is generated once at package load: for each safe
//	state, every crossing the boat supports that lands in a safe state
//	again, in fixed order (peasant alone, then with cabbage, goat, wolf).
//	The classic instance solves in seven crossings.
//
// Determinism
//
//	Actions draws from the precomputed table, so enumeration order is
//	stable and searches over a Puzzle are fully reproducible.
//
// Usage
//
//	res, err := bfs.Solve[rivercross.State, rivercross.Action](rivercross.Classic())
//	if err != nil {
//	    // bfs.ErrNoSolution, or an option/context failure
//	}
//	for i, a := range res.Solution {
//	    fmt.Printf("%d. %s\n", i+1, a.Describe())
//	}
//
//	// Custom scenarios place each traveler explicitly:
//	start := rivercross.Arrange(rivercross.Left, rivercross.Right, rivercross.Left, rivercross.Right)
//	p, err := rivercross.New(start, rivercross.AllRight)
//
// Errors
//
//   - ErrBadState             if New receives a malformed arrangement.
//   - problem.ErrInvalidAction (wrapped) if Result is asked to apply a
//     crossing that Actions does not offer in that state.
package rivercross
