package arith

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func u256Big(v U256) *big.Int {
	b, ok := new(big.Int).SetString(v.String(), 10)
	if !ok {
		panic("bad decimal")
	}
	return b
}

func TestU256Basics(t *testing.T) {
	require.True(t, U256{}.IsZero())
	require.False(t, OneU256.IsZero())
	require.True(t, OneU256.IsOdd())
	require.True(t, U256{}.IsEven())
	require.Equal(t, U256{2}, OneU256.Add(OneU256))
	require.Equal(t, 256, MaxU256.NumBits())
	require.Equal(t, 1, OneU256.NumBits())
	require.Equal(t, 0, U256{}.NumBits())
	require.Equal(t, "0", U256{}.String())
	require.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		MaxU256.String())
}

func TestU256Comparisons(t *testing.T) {
	a := U256FromUint64(5)
	b := U256{0, 1} // 2^64
	require.True(t, a.Lt(b))
	require.True(t, b.Gt(a))
	require.True(t, a.Le(a))
	require.True(t, a.Ge(a))
	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(a))
	require.True(t, a.Ne(b))
	require.True(t, a.Eq(a))
}

func TestU256AddSubOverflow(t *testing.T) {
	x := MaxU256
	require.True(t, x.AddWithCarry(&OneU256))
	require.True(t, x.IsZero())

	y := U256{}
	require.True(t, y.SubWithBorrow(&OneU256))
	require.Equal(t, MaxU256, y)

	_, overflow := MaxU256.CheckedAdd(OneU256)
	require.True(t, overflow)
	_, underflow := U256{}.CheckedSub(OneU256)
	require.True(t, underflow)

	sum, overflow := U256FromUint64(2).CheckedAdd(U256FromUint64(3))
	require.False(t, overflow)
	require.Equal(t, U256FromUint64(5), sum)

	require.Panics(t, func() { MaxU256.Add(OneU256) })
	require.Equal(t, U256{}, MaxU256.WrappingAdd(OneU256))
}

func TestU256ArithmeticMatchesBigInt(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	limbGen := gen.UInt64()
	two256 := new(big.Int).Lsh(big.NewInt(1), 256)

	properties.Property("wrapping addition matches big.Int", prop.ForAll(
		func(a0, a1, a2, a3, b0, b1, b2, b3 uint64) bool {
			x := NewU256([4]uint64{a0, a1, a2, a3})
			y := NewU256([4]uint64{b0, b1, b2, b3})
			want := new(big.Int).Add(u256Big(x), u256Big(y))
			want.Mod(want, two256)
			return u256Big(x.WrappingAdd(y)).Cmp(want) == 0
		},
		limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen,
	))

	properties.Property("widening multiplication matches big.Int", prop.ForAll(
		func(a0, a1, a2, a3, b0, b1, b2, b3 uint64) bool {
			x := NewU256([4]uint64{a0, a1, a2, a3})
			y := NewU256([4]uint64{b0, b1, b2, b3})
			lo, hi := x.MulWide(y)
			got := new(big.Int).Lsh(u256Big(hi), 256)
			got.Add(got, u256Big(lo))
			want := new(big.Int).Mul(u256Big(x), u256Big(y))
			return got.Cmp(want) == 0
		},
		limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen,
	))

	properties.Property("comparison matches big.Int", prop.ForAll(
		func(a0, a1, a2, a3, b0, b1, b2, b3 uint64) bool {
			x := NewU256([4]uint64{a0, a1, a2, a3})
			y := NewU256([4]uint64{b0, b1, b2, b3})
			return x.Cmp(y) == u256Big(x).Cmp(u256Big(y))
		},
		limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen,
	))

	properties.Property("halving and doubling match shifts", prop.ForAll(
		func(a0, a1, a2, a3 uint64) bool {
			x := NewU256([4]uint64{a0, a1, a2, a3})
			h := x
			h.Div2()
			if u256Big(h).Cmp(new(big.Int).Rsh(u256Big(x), 1)) != 0 {
				return false
			}
			d := x
			out := d.Mul2()
			want := new(big.Int).Lsh(u256Big(x), 1)
			gotOut := want.Bit(256) == 1
			want.Mod(want, two256)
			return u256Big(d).Cmp(want) == 0 && out == gotOut
		},
		limbGen, limbGen, limbGen, limbGen,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestU256BitAccess(t *testing.T) {
	x := U256{0, 0, 0, 1 << 63}
	require.True(t, x.Bit(255))
	require.False(t, x.Bit(254))
	require.False(t, x.Bit(0))
	require.True(t, OneU256.Bit(0))
}

func TestU256LEBytesRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("byte serialization round trips", prop.ForAll(
		func(a0, a1, a2, a3 uint64) bool {
			x := NewU256([4]uint64{a0, a1, a2, a3})
			b := x.LEBytes()
			return U256FromLEBytes(b[:]).Eq(x)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))

	require.Panics(t, func() { U256FromLEBytes(make([]byte, 31)) })
	require.Panics(t, func() { U256FromLEBytes(make([]byte, 33)) })
}

func TestWideU256Rem(t *testing.T) {
	x := U256FromDecimal("43129923721897334698312931")
	m := U256FromDecimal("375923422")
	w := NewWideU256(x, U256{})
	require.Equal(t, U256FromDecimal("216456157"), w.Rem(m))

	require.Panics(t, func() { w.Rem(U256{}) })

	// Remainder of a value below the modulus is the value itself.
	small := NewWideU256(U256FromUint64(7), U256{})
	require.Equal(t, U256FromUint64(7), small.Rem(U256FromUint64(100)))
}

func TestWideU256RemMatchesBigInt(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	limbGen := gen.UInt64()

	properties.Property("remainder matches big.Int", prop.ForAll(
		func(a0, a1, a2, a3, b0, b1, b2, b3, m0, m1 uint64) bool {
			lo := NewU256([4]uint64{a0, a1, a2, a3})
			hi := NewU256([4]uint64{b0, b1, b2, b3})
			m := NewU256([4]uint64{m0, m1, 0, 0})
			if m.IsZero() {
				m = OneU256
			}
			w := NewWideU256(lo, hi)
			wide := new(big.Int).Lsh(u256Big(hi), 256)
			wide.Add(wide, u256Big(lo))
			want := wide.Mod(wide, u256Big(m))
			return u256Big(w.Rem(m)).Cmp(want) == 0
		},
		limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen, limbGen,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestU256Parsing(t *testing.T) {
	require.Equal(t, U256FromUint64(255), U256FromHex("ff"))
	require.Equal(t, U256FromUint64(255), U256FromHex("FF"))
	require.Equal(t, U256FromUint64(4096), U256FromDecimal("4096"))
	require.Equal(t, MaxU256,
		U256FromHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"))

	require.Panics(t, func() { U256FromDecimal("") })
	require.Panics(t, func() { U256FromDecimal("12a") })
	require.Panics(t, func() { U256FromHex("zz") })
	require.Panics(t, func() { U256FromDecimal("ab\xcd") })
	// One digit too many for four limbs.
	require.Panics(t, func() {
		U256FromHex("1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	})
}

func TestU256ParsingMatchesBigInt(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("radix 10 and 16 agree with big.Int", prop.ForAll(
		func(a0, a1, a2, a3 uint64) bool {
			want := u256Big(NewU256([4]uint64{a0, a1, a2, a3}))
			dec := U256FromDecimal(want.Text(10))
			hex := U256FromHex(want.Text(16))
			radix := U256FromStringRadix(want.Text(8), 8)
			return dec.Eq(hex) && dec.Eq(radix) && u256Big(dec).Cmp(want) == 0
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestU256StringFormatting(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"18446744073709551616", "18446744073709551616"}, // 2^64
		{"340282366920938463463374607431768211456", "340282366920938463463374607431768211456"}, // 2^128
	} {
		require.Equal(t, tc.want, U256FromDecimal(tc.in).String(), fmt.Sprintf("input %s", tc.in))
	}
}
