// Package rivercross provides the state and action vocabulary
// for the peasant, wolf, goat and cabbage puzzle.
package rivercross

import (
	"errors"
	"strings"
)

// Sentinel errors for puzzle construction.
var (
	// ErrBadState is returned when a State places a traveler on both banks
	// or on neither.
	ErrBadState = errors.New("rivercross: malformed state")
)

// State encodes where the four travelers stand, one byte for both banks:
// the low nibble holds the right bank, the high nibble the left bank.
// The zero State is malformed (nobody stands anywhere); build values with
// Arrange or start from AllRight / AllLeft.
type State uint8

// Per-traveler bank bits. Right-bank bits occupy the low nibble, left-bank
// bits the high nibble, member order wolf, goat, cabbage, peasant from the
// lowest bit up.
const (
	rw State = 1 << iota // wolf on the right bank
	rg                   // goat on the right bank
	rc                   // cabbage on the right bank
	rp                   // peasant on the right bank
	lw                   // wolf on the left bank
	lg                   // goat on the left bank
	lc                   // cabbage on the left bank
	lp                   // peasant on the left bank
)

// Traveler bits within a single bank nibble.
const (
	wolfBit    uint8 = 0x1
	goatBit    uint8 = 0x2
	cabbageBit uint8 = 0x4
	peasantBit uint8 = 0x8
)

// Canonical arrangements of the classic puzzle.
const (
	// AllRight holds every traveler on the right bank (the classic start).
	AllRight = rw | rg | rc | rp
	// AllLeft holds every traveler on the left bank (the classic goal).
	AllLeft = lw | lg | lc | lp
)

// Bank identifies a side of the river.
type Bank uint8

const (
	// Right is the bank everyone starts on in the classic puzzle.
	Right Bank = iota
	// Left is the far bank.
	Left
)

// String returns "left" or "right".
func (b Bank) String() string {
	if b == Left {
		return "left"
	}

	return "right"
}

// Arrange builds a well-formed State by placing each traveler on a bank.
func Arrange(peasant, cabbage, goat, wolf Bank) State {
	return place(peasantBit, peasant) | place(cabbageBit, cabbage) | place(goatBit, goat) | place(wolfBit, wolf)
}

// place returns the single bank bit for one traveler.
func place(member uint8, b Bank) State {
	if b == Left {
		return State(member) << 4
	}

	return State(member)
}

// Action is one boat crossing. Its bits name who lands where, in the same
// vocabulary as State: left crossings set high-nibble bits, right
// crossings low-nibble bits, and the peasant is always aboard.
type Action uint8

// Crossings the boat supports: the peasant rows alone or with exactly one
// companion from its own bank.
const (
	CrossRightAlone       = Action(rp)
	CrossRightWithCabbage = Action(rc | rp)
	CrossRightWithGoat    = Action(rg | rp)
	CrossRightWithWolf    = Action(rw | rp)
	CrossLeftAlone        = Action(lp)
	CrossLeftWithCabbage  = Action(lc | lp)
	CrossLeftWithGoat     = Action(lg | lp)
	CrossLeftWithWolf     = Action(lw | lp)
)

// writeMembers appends the travelers of one bank nibble in fixed
// P, C, G, W order, or '-' when the nibble is empty.
func writeMembers(b *strings.Builder, nibble uint8) {
	start := b.Len()
	if nibble&peasantBit != 0 {
		b.WriteByte('P')
	}
	if nibble&cabbageBit != 0 {
		b.WriteByte('C')
	}
	if nibble&goatBit != 0 {
		b.WriteByte('G')
	}
	if nibble&wolfBit != 0 {
		b.WriteByte('W')
	}
	if b.Len() == start {
		b.WriteByte('-')
	}
}

// String renders left-bank members, a separator, and right-bank members:
// the classic puzzle starts at "-|PCGW" and seeks "PCGW|-".
func (s State) String() string {
	var b strings.Builder
	writeMembers(&b, uint8(s)>>4)
	b.WriteByte('|')
	writeMembers(&b, uint8(s)&0x0F)

	return b.String()
}

// String renders the crossing party and its direction, e.g. "PG>L" for
// the peasant rowing the goat to the left bank.
func (a Action) String() string {
	nibble, dir := uint8(a)&0x0F, byte('R')
	if uint8(a)>>4 != 0 {
		nibble, dir = uint8(a)>>4, byte('L')
	}
	var b strings.Builder
	writeMembers(&b, nibble)
	b.WriteByte('>')
	b.WriteByte(dir)

	return b.String()
}

// Describe spells the action out as a sentence, e.g.
// "Peasant and goat cross left."
func (a Action) Describe() string {
	dir, nibble := "right", uint8(a)&0x0F
	if uint8(a)>>4 != 0 {
		dir, nibble = "left", uint8(a)>>4
	}
	switch nibble &^ peasantBit {
	case cabbageBit:
		return "Peasant and cabbage cross " + dir + "."
	case goatBit:
		return "Peasant and goat cross " + dir + "."
	case wolfBit:
		return "Peasant and wolf cross " + dir + "."
	default:
		return "Peasant crosses " + dir + "."
	}
}
