package field

import (
	"testing"

	goldilocksref "github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/goseidon/goseidon/arith"
)

func TestGoldilocksConstants(t *testing.T) {
	p := Goldilocks()
	require.Equal(t, uint64(18446744069414584321), p.Modulus[0])
	require.Equal(t, uint64(4294967295), p.R[0])
	require.Equal(t, uint64(18446744065119617025), p.R2[0])
	require.Equal(t, uint64(18446744069414584319), p.Inv)
	require.False(t, p.hasSpareBit)

	require.True(t, p.One().IsOne())
	require.True(t, p.Zero().IsZero())
	require.Equal(t, uint64(7), p.Generator.Uint64())
}

func TestBabyBearConstants(t *testing.T) {
	p := BabyBear()
	require.Equal(t, uint64(2013265921), p.Modulus[0])
	require.True(t, p.hasSpareBit)
	require.Equal(t, uint64(31), p.Generator.Uint64())
}

func TestParams64RejectsEvenModulus(t *testing.T) {
	require.Panics(t, func() {
		NewParams64("18446744073709551614", "3")
	})
}

func TestElement64RoundTrip(t *testing.T) {
	p := Goldilocks()

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("to and from canonical form is the identity", prop.ForAll(
		func(a uint64) bool {
			v := a % p.Modulus[0]
			return p.FromUint64(v).Uint64() == v
		},
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestElement64FieldAxioms(t *testing.T) {
	p := Goldilocks()

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes", prop.ForAll(
		func(a, b uint64) bool {
			x, y := p.FromUint64(a), p.FromUint64(b)
			return x.Add(y).Equal(y.Add(x))
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b uint64) bool {
			x, y := p.FromUint64(a), p.FromUint64(b)
			return x.Mul(y).Equal(y.Mul(x))
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c uint64) bool {
			x, y, z := p.FromUint64(a), p.FromUint64(b), p.FromUint64(c)
			return x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z)))
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("negation is the additive inverse", prop.ForAll(
		func(a uint64) bool {
			x := p.FromUint64(a)
			return x.Add(x.Neg()).IsZero()
		},
		gen.UInt64(),
	))

	properties.Property("doubling equals self addition", prop.ForAll(
		func(a uint64) bool {
			x := p.FromUint64(a)
			return x.Double().Equal(x.Add(x))
		},
		gen.UInt64(),
	))

	properties.Property("squaring equals self multiplication", prop.ForAll(
		func(a uint64) bool {
			x := p.FromUint64(a)
			return x.Square().Equal(x.Mul(x))
		},
		gen.UInt64(),
	))

	properties.Property("inverse is the multiplicative inverse", prop.ForAll(
		func(a uint64) bool {
			x := p.FromUint64(a)
			inv, ok := x.Inverse()
			if x.IsZero() {
				return !ok
			}
			return ok && x.Mul(inv).IsOne()
		},
		gen.UInt64(),
	))

	properties.Property("exponent adds under multiplication", prop.ForAll(
		func(a uint64, e1, e2 uint8) bool {
			x := p.FromUint64(a)
			return x.Exp(uint64(e1)).Mul(x.Exp(uint64(e2))).Equal(x.Exp(uint64(e1) + uint64(e2)))
		},
		gen.UInt64(), gen.UInt8(), gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestElement64MatchesReference(t *testing.T) {
	p := Goldilocks()

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("arithmetic agrees with gnark-crypto goldilocks", prop.ForAll(
		func(a, b uint64) bool {
			x, y := p.FromUint64(a), p.FromUint64(b)
			var xr, yr, r goldilocksref.Element
			xr.SetUint64(a)
			yr.SetUint64(b)

			if r.Add(&xr, &yr); x.Add(y).Uint64() != r.Uint64() {
				return false
			}
			if r.Sub(&xr, &yr); x.Sub(y).Uint64() != r.Uint64() {
				return false
			}
			if r.Mul(&xr, &yr); x.Mul(y).Uint64() != r.Uint64() {
				return false
			}
			return true
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("inversion agrees with gnark-crypto goldilocks", prop.ForAll(
		func(a uint64) bool {
			x := p.FromUint64(a)
			inv, ok := x.Inverse()
			if !ok {
				return a%p.Modulus[0] == 0
			}
			var xr, r goldilocksref.Element
			xr.SetUint64(a)
			r.Inverse(&xr)
			return inv.Uint64() == r.Uint64()
		},
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestElement64FromBigInt(t *testing.T) {
	p := Goldilocks()

	_, ok := p.FromBigInt(p.Modulus)
	require.False(t, ok)

	top := p.Modulus
	top.SubWithBorrow(&arith.OneU64)
	z, ok := p.FromBigInt(top)
	require.True(t, ok)
	require.Equal(t, top, z.BigInt())
}

func TestElement64FromUint64Reduces(t *testing.T) {
	p := Goldilocks()
	require.Equal(t, uint64(0), p.FromUint64(p.Modulus[0]).Uint64())
	require.Equal(t, uint64(1), p.FromUint64(p.Modulus[0]+1).Uint64())
	require.Equal(t, uint64(42), p.FromUint64(42).Uint64())
}

func TestElement64MismatchedParamsPanics(t *testing.T) {
	a := Goldilocks().FromUint64(1)
	b := BabyBear().FromUint64(1)
	require.Panics(t, func() { a.Add(b) })
	require.Panics(t, func() { a.Mul(b) })
	require.Panics(t, func() { a.Equal(b) })
}
