package poseidon2

import (
	"sync"

	"github.com/goseidon/goseidon/arith"
	"github.com/goseidon/goseidon/field"
)

// GoldilocksWidth and the round counts pin the width-12 degree-7 instance
// over the Goldilocks field.
const (
	GoldilocksWidth    = 12
	GoldilocksCapacity = 4
)

var (
	goldilocksOnce   sync.Once
	goldilocksParams *Parameters[field.Element64]
)

// NewGoldilocksParameters returns the shared width-12 Goldilocks instance.
func NewGoldilocksParameters() *Parameters[field.Element64] {
	goldilocksOnce.Do(func() {
		p := field.Goldilocks()
		diag := make([]field.Element64, len(goldilocksDiag))
		for i, s := range goldilocksDiag {
			diag[i] = p.FromHex(s)
		}
		rc := make([][]field.Element64, len(goldilocksRC))
		for i, row := range goldilocksRC {
			rc[i] = make([]field.Element64, len(row))
			for j, s := range row {
				rc[i][j] = p.FromHex(s)
			}
		}
		goldilocksParams = NewParameters(GoldilocksWidth, 7, 8, 22, diag, rc)
	})
	return goldilocksParams
}

// NewGoldilocksPermutation returns a permutation over the shared instance.
func NewGoldilocksPermutation() *Permutation[field.Element64] {
	return NewPermutation(NewGoldilocksParameters())
}

// NewGoldilocksSponge returns an empty sponge over the shared instance.
func NewGoldilocksSponge() *Sponge[field.Element64] {
	return NewSponge(NewGoldilocksPermutation(), GoldilocksCapacity)
}

// NewGoldilocksHasher returns a byte hasher over the shared instance.
func NewGoldilocksHasher() *Hasher[field.Element64] {
	p := field.Goldilocks()
	return NewHasher(NewGoldilocksPermutation(), GoldilocksCapacity, arith.Bytes64,
		func(b []byte) field.Element64 {
			return p.New(arith.U64FromLEBytes(b))
		},
		func(e field.Element64) []byte {
			b := e.BigInt().LEBytes()
			return b[:]
		},
	)
}

var goldilocksDiag = []string{
	"c3b6c08e23ba9300",
	"d84b5de94a324fb6",
	"0d0c371c5b35b84f",
	"7964f570e7188037",
	"5daf18bbd996604b",
	"6743bc47b9595257",
	"5528b9362c59bb70",
	"ac45e25b7127b68b",
	"a2077d7dfbb606b5",
	"f3faac6faee378ae",
	"0c6388b51545e883",
	"d27dbb6944917b60",
}

var goldilocksRC = [][]string{
	{
		"13dcf33aba214f46", "30b3b654a1da6d83", "1fc634ada6159b56", "937459964dc03466",
		"edd2ef2ca7949924", "ede9affde0e22f68", "8515b9d6bac9282d", "6b5c07b4e9e900d8",
		"1ec66368838c8a08", "9042367d80d1fbab", "400283564a3c3799", "4a00be0466bca75e",
	},
	{
		"7913beee58e3817f", "f545e88532237d90", "22f8cb8736042005", "6f04990e247a2623",
		"fe22e87ba37c38cd", "d20e32c85ffe2815", "117227674048fe73", "4e9fb7ea98a6b145",
		"e0866c232b8af08b", "00bbc77916884964", "7031c0fb990d7116", "240a9e87cf35108f",
	},
	{
		"2e6363a5a12244b3", "5e1c3787d1b5011c", "4132660e2a196e8b", "3a013b648d3d4327",
		"f79839f49888ea43", "fe85658ebafe1439", "b6889825a14240bd", "578453605541382b",
		"4508cda8f6b63ce9", "9c3ef35848684c91", "0812bde23c87178c", "fe49638f7f722c14",
	},
	{
		"8e3f688ce885cbf5", "b8e110acf746a87d", "b4b2e8973a6dabef", "9e714c5da3d462ec",
		"6438f9033d3d0c15", "24312f7cf1a27199", "23f843bb47acbf71", "9183f11a34be9f01",
		"839062fbb9d45dbf", "24b56e7e6c2e43fa", "e1683da61c962a72", "a95c63971a19bfa7",
	},
	{
		"4adf842aa75d4316", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"f8fbb871aa4ab4eb", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"68e85b6eb2dd6aeb", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"07a0b06b2d270380", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"d94e0228bd282de4", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"8bdd91d3250c5278", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"209c68b88bba778f", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"b5e18cdab77f3877", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"b296a3e808da93fa", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"8370ecbda11a327e", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"3f9075283775dad8", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"b78095bb23c6aa84", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"3f36b9fe72ad4e5f", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"69bc96780b10b553", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"3f1d341f2eb7b881", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"4e939e9815838818", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"da366b3ae2a31604", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"bc89db1e7287d509", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"6102f411f9ef5659", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"58725c5e7ac1f0ab", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"0df5856c798883e7", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"f7bb62a8da4c961b", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
		"0000000000000000", "0000000000000000", "0000000000000000", "0000000000000000",
	},
	{
		"c68be7c94882a24d", "af996d5d5cdaedd9", "9717f025e7daf6a5", "6436679e6e7216f4",
		"8a223d99047af267", "bb512e35a133ba9a", "fbbf44097671aa03", "f04058ebf6811e61",
		"5cca84703fac7ffb", "9b55c7945de6469f", "8e05bf09808e934f", "2ea900de876307d7",
	},
	{
		"7748fff2b38dfb89", "6b99a676dd3b5d81", "ac4bb7c627cf7c13", "adb6ebe5e9e2f5ba",
		"2d33378cafa24ae3", "1e5b73807543f8c2", "09208814bfebb10f", "782e64b6bb5b93dd",
		"add5a48eac90b50f", "add4c54c736ea4b1", "d58dbb86ed817fd8", "6d5ed1a533f34ddd",
	},
	{
		"28686aa3e36b7cb9", "591abd3476689f36", "047d766678f13875", "a2a11112625f5b49",
		"21fd10a3f8304958", "f9b40711443b0280", "d2697eb8b2bde88e", "3493790b51731b3f",
		"11caf9dd73764023", "7acfb8f72878164e", "744ec4db23cefc26", "1e00e58f422c6340",
	},
	{
		"21dd28d906a62dda", "f32a46ab5f465b5f", "bfce13201f3f7e6b", "f30d2e7adb5304e2",
		"ecdf4ee4abad48e9", "f94e82182d395019", "4ee52e3744d887c5", "a1341c7cac0083b2",
		"2302fb26c30c834a", "aea3c587273bf7d3", "f798e24961823ec7", "962deba3e9a2cd94",
	},
}
