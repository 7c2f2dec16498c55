package poseidon2

import "fmt"

// Sponge is a duplex-style sponge over a Poseidon2 permutation. Absorb and
// Squeeze share the state; once the first element has been squeezed the
// sponge is committed and further absorption panics.
type Sponge[E Element[E]] struct {
	perm      *Permutation[E]
	state     []E
	capacity  int
	index     int
	squeezing bool
}

// NewSponge returns an empty sponge with the given capacity. The rate is
// Width - capacity and must be positive.
func NewSponge[E Element[E]](perm *Permutation[E], capacity int) *Sponge[E] {
	width := perm.params.Width
	if capacity <= 0 || capacity >= width {
		panic(fmt.Sprintf("poseidon2: capacity %d out of range for width %d", capacity, width))
	}
	s := &Sponge[E]{
		perm:     perm,
		state:    make([]E, width),
		capacity: capacity,
		index:    capacity,
	}
	for i := range s.state {
		s.state[i] = perm.params.zero
	}
	return s
}

// Absorb adds one element into the next rate slot, permuting when the rate
// is exhausted. Panics after the first Squeeze.
func (s *Sponge[E]) Absorb(x E) {
	if s.squeezing {
		panic("poseidon2: absorb called on a squeezing sponge")
	}
	if s.index == len(s.state) {
		s.perm.Permutation(s.state)
		s.index = s.capacity
	}
	s.state[s.index] = s.state[s.index].Add(x)
	s.index++
}

// AbsorbBatch absorbs the elements in order.
func (s *Sponge[E]) AbsorbBatch(xs []E) {
	for _, x := range xs {
		s.Absorb(x)
	}
}

// Squeeze returns the next output element. The first call permutes the
// state to seal the absorbed input.
func (s *Sponge[E]) Squeeze() E {
	if !s.squeezing || s.index == len(s.state) {
		s.perm.Permutation(s.state)
		s.index = s.capacity
		s.squeezing = true
	}
	out := s.state[s.index]
	s.index++
	return out
}

// SqueezeBatch returns the next n output elements.
func (s *Sponge[E]) SqueezeBatch(n int) []E {
	out := make([]E, n)
	for i := range out {
		out[i] = s.Squeeze()
	}
	return out
}
