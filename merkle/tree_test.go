package merkle

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/goseidon/goseidon/field"
	"github.com/goseidon/goseidon/poseidon2"
)

func vestaLeaves(vals ...uint64) []field.Element256 {
	p := field.Vesta()
	out := make([]field.Element256, len(vals))
	for i, v := range vals {
		out[i] = p.FromUint64(v)
	}
	return out
}

func TestAccumulateMatchesManualCompression(t *testing.T) {
	perm := poseidon2.NewVestaPermutation()
	leaves := vestaLeaves(1, 2, 3, 4)

	tree := Accumulate(perm, leaves)

	left := perm.Compress(leaves[0], leaves[1])
	right := perm.Compress(leaves[2], leaves[3])
	require.True(t, tree.Root().Equal(perm.Compress(left, right)))
	require.Equal(t, 2, tree.Depth())
	require.Equal(t, 4, tree.NumLeaves())
}

func TestAccumulatePadsWithLastLeaf(t *testing.T) {
	perm := poseidon2.NewVestaPermutation()

	// Three leaves pad to four by repeating the last one.
	tree := Accumulate(perm, vestaLeaves(1, 2, 3))
	padded := Accumulate(perm, vestaLeaves(1, 2, 3, 3))
	require.True(t, tree.Root().Equal(padded.Root()))

	// A single leaf still compresses once, against itself.
	single := Accumulate(perm, vestaLeaves(7))
	leaf := vestaLeaves(7)[0]
	require.True(t, single.Root().Equal(perm.Compress(leaf, leaf)))
	require.Equal(t, 1, single.Depth())
}

func TestAccumulatePanicsOnEmptySet(t *testing.T) {
	perm := poseidon2.NewVestaPermutation()
	require.Panics(t, func() { Accumulate(perm, nil) })
}

func TestProveVerify(t *testing.T) {
	perm := poseidon2.NewGoldilocksPermutation()
	p := field.Goldilocks()

	leaves := make([]field.Element64, 11)
	for i := range leaves {
		leaves[i] = p.FromUint64(uint64(i) * 1000003)
	}
	tree := Accumulate(perm, leaves)

	for i := range leaves {
		proof, err := tree.Prove(i)
		require.NoError(t, err)
		require.Len(t, proof.Siblings, tree.Depth())
		require.True(t, Verify(perm, tree.Root(), leaves[i], proof))

		// A proof must not verify a different leaf.
		require.False(t, Verify(perm, tree.Root(), leaves[(i+1)%len(leaves)], proof))
	}

	_, err := tree.Prove(-1)
	require.Error(t, err)
	_, err = tree.Prove(len(leaves))
	require.Error(t, err)
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	perm := poseidon2.NewVestaPermutation()
	p := field.Vesta()
	leaves := vestaLeaves(10, 20, 30, 40, 50, 60, 70, 80)
	tree := Accumulate(perm, leaves)

	proof, err := tree.Prove(3)
	require.NoError(t, err)

	tampered := proof
	tampered.Siblings = append([]field.Element256(nil), proof.Siblings...)
	tampered.Siblings[1] = tampered.Siblings[1].Add(p.One())
	require.False(t, Verify(perm, tree.Root(), leaves[3], tampered))

	wrongIndex := proof
	wrongIndex.Index = 2
	require.False(t, Verify(perm, tree.Root(), leaves[3], wrongIndex))
}

func TestRootSensitivity(t *testing.T) {
	perm := poseidon2.NewGoldilocksPermutation()
	p := field.Goldilocks()

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("changing any leaf changes the root", prop.ForAll(
		func(seed uint64, slot uint8) bool {
			leaves := make([]field.Element64, 6)
			for i := range leaves {
				leaves[i] = p.FromUint64(seed + uint64(i))
			}
			root := Accumulate(perm, leaves).Root()

			i := int(slot) % len(leaves)
			leaves[i] = leaves[i].Add(p.One())
			return !Accumulate(perm, leaves).Root().Equal(root)
		},
		gen.UInt64(), gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
