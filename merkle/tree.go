// Package merkle builds binary Merkle trees whose nodes are field elements
// compressed with a Poseidon2 permutation.
package merkle

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/goseidon/goseidon/poseidon2"
)

// Tree is a fully materialized binary Merkle tree. The leaf layer is padded
// to a power of two (at least two) by repeating the last leaf.
type Tree[E poseidon2.Element[E]] struct {
	perm      *poseidon2.Permutation[E]
	numLeaves int
	// layers[0] is the padded leaf layer, the last layer holds the root.
	layers [][]E
}

// Proof authenticates one leaf against a root: the sibling on every level,
// leaf first.
type Proof[E poseidon2.Element[E]] struct {
	Index    int
	Siblings []E
}

// Accumulate hashes the leaf set into a tree. Levels are compressed in
// parallel across the available CPUs. Panics on an empty leaf set.
func Accumulate[E poseidon2.Element[E]](perm *poseidon2.Permutation[E], leaves []E) *Tree[E] {
	if len(leaves) == 0 {
		panic("merkle: empty leaf set")
	}

	bound := 2
	for bound < len(leaves) {
		bound *= 2
	}
	base := make([]E, bound)
	copy(base, leaves)
	for i := len(leaves); i < bound; i++ {
		base[i] = leaves[len(leaves)-1]
	}

	t := &Tree[E]{
		perm:      perm,
		numLeaves: len(leaves),
		layers:    [][]E{base},
	}
	for cur := base; len(cur) > 1; {
		next := make([]E, len(cur)/2)
		compressLevel(perm, cur, next)
		t.layers = append(t.layers, next)
		cur = next
	}
	return t
}

// compressLevel fills next[i] = Compress(cur[2i], cur[2i+1]), splitting the
// level across workers. Compress allocates per call, so workers share
// nothing but the read-only parameters.
func compressLevel[E poseidon2.Element[E]](perm *poseidon2.Permutation[E], cur, next []E) {
	workers := runtime.NumCPU()
	if workers > len(next) {
		workers = len(next)
	}
	chunk := (len(next) + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(next))
		g.Go(func() error {
			for i := start; i < end; i++ {
				next[i] = perm.Compress(cur[2*i], cur[2*i+1])
			}
			return nil
		})
	}
	// Workers never fail; Wait is only a join point.
	_ = g.Wait()
}

// Root returns the tree root.
func (t *Tree[E]) Root() E {
	top := t.layers[len(t.layers)-1]
	return top[0]
}

// NumLeaves returns the unpadded leaf count.
func (t *Tree[E]) NumLeaves() int { return t.numLeaves }

// Depth returns the number of compression levels above the leaves.
func (t *Tree[E]) Depth() int { return len(t.layers) - 1 }

// Prove returns the authentication path for the leaf at index.
func (t *Tree[E]) Prove(index int) (Proof[E], error) {
	if index < 0 || index >= t.numLeaves {
		return Proof[E]{}, fmt.Errorf("merkle: leaf index %d out of range [0, %d)", index, t.numLeaves)
	}
	proof := Proof[E]{
		Index:    index,
		Siblings: make([]E, 0, t.Depth()),
	}
	i := index
	for _, layer := range t.layers[:len(t.layers)-1] {
		proof.Siblings = append(proof.Siblings, layer[i^1])
		i >>= 1
	}
	return proof, nil
}

// Verify recomputes the root from a leaf and its proof.
func Verify[E poseidon2.Element[E]](perm *poseidon2.Permutation[E], root, leaf E, proof Proof[E]) bool {
	node := leaf
	i := proof.Index
	for _, sibling := range proof.Siblings {
		if i&1 == 0 {
			node = perm.Compress(node, sibling)
		} else {
			node = perm.Compress(sibling, node)
		}
		i >>= 1
	}
	return node.Equal(root)
}
