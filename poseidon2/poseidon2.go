// Package poseidon2 implements the Poseidon2 permutation and the sponge
// built on it, generic over the field element type.
//
// The permutation follows the structure of Poseidon2 (https://eprint.iacr.org/2023/323.pdf):
// an initial external linear layer, half of the full rounds, the partial
// rounds, then the remaining full rounds. State widths 2 and 3 use the
// fixed circulant matrices; widths that are multiples of 4, up to 24, use
// the 4x4 MDS block construction.
package poseidon2

import "fmt"

// Element is the field-element contract the permutation needs. Methods are
// value-to-value so state updates stay explicit at the call site.
type Element[E any] interface {
	Add(E) E
	Sub(E) E
	Mul(E) E
	Square() E
	Double() E
	Equal(E) bool
}

// Parameters fixes one Poseidon2 instance: state width, s-box degree,
// round counts and the round constants. Built with NewParameters and
// immutable afterwards.
type Parameters[E Element[E]] struct {
	// Width is the state size t.
	Width int
	// SBoxDegree is the s-box exponent d, one of 3, 5 or 7.
	SBoxDegree int
	// RoundsFull is the number of external rounds, split evenly around
	// the partial rounds.
	RoundsFull int
	// RoundsPartial is the number of internal rounds.
	RoundsPartial int

	// InternalDiag holds the diagonal minus one of the internal matrix,
	// one entry per state slot.
	InternalDiag []E
	// RoundConstants holds one row of Width constants per round.
	RoundConstants [][]E

	zero E
}

// NewParameters validates and assembles a parameter set. It panics on
// malformed inputs: unsupported width or s-box degree, odd full-round
// count, or constant tables of the wrong shape. Parameters come from
// trusted instance generation, so failures are programmer errors.
func NewParameters[E Element[E]](width, sboxDegree, roundsFull, roundsPartial int, internalDiag []E, roundConstants [][]E) *Parameters[E] {
	switch width {
	case 2, 3, 4, 8, 12, 16, 20, 24:
	default:
		panic(fmt.Sprintf("poseidon2: unsupported state width %d", width))
	}
	switch sboxDegree {
	case 3, 5, 7:
	default:
		panic(fmt.Sprintf("poseidon2: unsupported s-box degree %d", sboxDegree))
	}
	if roundsFull <= 0 || roundsFull%2 != 0 {
		panic("poseidon2: full round count must be positive and even")
	}
	if roundsPartial <= 0 {
		panic("poseidon2: partial round count must be positive")
	}
	if len(internalDiag) != width {
		panic("poseidon2: internal diagonal has the wrong length")
	}
	if len(roundConstants) != roundsFull+roundsPartial {
		panic("poseidon2: round constant table has the wrong number of rounds")
	}
	for _, rc := range roundConstants {
		if len(rc) != width {
			panic("poseidon2: round constant row has the wrong length")
		}
	}
	return &Parameters[E]{
		Width:          width,
		SBoxDegree:     sboxDegree,
		RoundsFull:     roundsFull,
		RoundsPartial:  roundsPartial,
		InternalDiag:   internalDiag,
		RoundConstants: roundConstants,
		zero:           roundConstants[0][0].Sub(roundConstants[0][0]),
	}
}

// Zero returns the additive identity of the element type.
func (p *Parameters[E]) Zero() E { return p.zero }

// Permutation applies the Poseidon2 permutation for one parameter set.
type Permutation[E Element[E]] struct {
	params *Parameters[E]
}

// NewPermutation returns a permutation over the given parameters.
func NewPermutation[E Element[E]](params *Parameters[E]) *Permutation[E] {
	return &Permutation[E]{params: params}
}

// Parameters returns the instance this permutation runs.
func (h *Permutation[E]) Parameters() *Parameters[E] { return h.params }

// Permutation permutes state in place. Panics if len(state) differs from
// the instance width.
func (h *Permutation[E]) Permutation(state []E) {
	p := h.params
	if len(state) != p.Width {
		panic(fmt.Sprintf("poseidon2: state size %d does not match width %d", len(state), p.Width))
	}

	h.matmulExternal(state)

	halfF := p.RoundsFull / 2
	for r := 0; r < halfF; r++ {
		h.addRoundConstants(state, r)
		h.sboxFull(state)
		h.matmulExternal(state)
	}
	for r := halfF; r < halfF+p.RoundsPartial; r++ {
		state[0] = state[0].Add(p.RoundConstants[r][0])
		state[0] = h.sbox(state[0])
		h.matmulInternal(state)
	}
	for r := halfF + p.RoundsPartial; r < p.RoundsFull+p.RoundsPartial; r++ {
		h.addRoundConstants(state, r)
		h.sboxFull(state)
		h.matmulExternal(state)
	}
}

// Compress is the two-to-one hash used by Merkle trees: permute
// [a, b, 0..] and return the first state slot.
func (h *Permutation[E]) Compress(a, b E) E {
	if h.params.Width < 3 {
		panic("poseidon2: compression requires state width of at least 3")
	}
	state := make([]E, h.params.Width)
	state[0] = a
	state[1] = b
	for i := 2; i < len(state); i++ {
		state[i] = h.params.zero
	}
	h.Permutation(state)
	return state[0]
}

func (h *Permutation[E]) addRoundConstants(state []E, round int) {
	rc := h.params.RoundConstants[round]
	for i := range state {
		state[i] = state[i].Add(rc[i])
	}
}

func (h *Permutation[E]) sboxFull(state []E) {
	for i := range state {
		state[i] = h.sbox(state[i])
	}
}

func (h *Permutation[E]) sbox(x E) E {
	switch h.params.SBoxDegree {
	case 3:
		return x.Square().Mul(x)
	case 5:
		return x.Square().Square().Mul(x)
	default: // 7
		x2 := x.Square()
		x4 := x2.Square()
		return x4.Mul(x2).Mul(x)
	}
}

// matmulExternal multiplies the state by the external matrix: the
// circulant circ(2,1) / circ(2,1,1) for widths 2 and 3, the M4 block
// construction otherwise.
func (h *Permutation[E]) matmulExternal(state []E) {
	switch h.params.Width {
	case 2:
		sum := state[0].Add(state[1])
		state[0] = state[0].Add(sum)
		state[1] = state[1].Add(sum)
	case 3:
		sum := state[0].Add(state[1]).Add(state[2])
		state[0] = state[0].Add(sum)
		state[1] = state[1].Add(sum)
		state[2] = state[2].Add(sum)
	case 4:
		h.matmulM4(state)
	default:
		h.matmulM4(state)
		var sums [4]E
		for l := 0; l < 4; l++ {
			sums[l] = state[l]
			for j := 4 + l; j < len(state); j += 4 {
				sums[l] = sums[l].Add(state[j])
			}
		}
		for i := range state {
			state[i] = state[i].Add(sums[i%4])
		}
	}
}

// matmulM4 applies the 4x4 MDS matrix [[5,7,1,3],[4,6,1,1],[1,3,5,7],[1,1,4,6]]
// to each aligned block of four state slots.
func (h *Permutation[E]) matmulM4(state []E) {
	for b := 0; b < len(state)/4; b++ {
		s := state[4*b : 4*b+4]
		t0 := s[0].Add(s[1])
		t1 := s[2].Add(s[3])
		t2 := s[1].Double().Add(t1)
		t3 := s[3].Double().Add(t0)
		t4 := t1.Double().Double().Add(t3)
		t5 := t0.Double().Double().Add(t2)
		t6 := t3.Add(t5)
		t7 := t2.Add(t4)
		s[0] = t6
		s[1] = t5
		s[2] = t7
		s[3] = t4
	}
}

// matmulInternal multiplies the state by the internal matrix. Widths 2 and
// 3 use the fixed matrices [[2,1],[1,3]] and [[2,1,1],[1,2,1],[1,1,3]];
// larger widths use diag(InternalDiag) plus the all-ones matrix.
func (h *Permutation[E]) matmulInternal(state []E) {
	switch h.params.Width {
	case 2:
		sum := state[0].Add(state[1])
		state[0] = state[0].Add(sum)
		state[1] = state[1].Double().Add(sum)
	case 3:
		sum := state[0].Add(state[1]).Add(state[2])
		state[0] = state[0].Add(sum)
		state[1] = state[1].Add(sum)
		state[2] = state[2].Double().Add(sum)
	default:
		sum := state[0]
		for i := 1; i < len(state); i++ {
			sum = sum.Add(state[i])
		}
		for i := range state {
			state[i] = state[i].Mul(h.params.InternalDiag[i]).Add(sum)
		}
	}
}
