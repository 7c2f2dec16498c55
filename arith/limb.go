// Package arith implements fixed-width multi-precision unsigned integers on
// 64-bit limbs, little-endian limb order. Widths are instantiated as concrete
// types (U64, U256) rather than parameterized, so values stay stack-allocated
// with copy semantics.
//
// Comparison and bit-introspection methods examine the limbs from most to
// least significant and may branch on the position of the first differing
// limb. Callers that need a fully time-invariant compare across all limbs
// must layer that on top.
package arith

import "math/bits"

// Limb is a single 64-bit machine word.
type Limb = uint64

const (
	// LimbBits is the width of a limb in bits.
	LimbBits = 64
	// LimbBytes is the width of a limb in bytes.
	LimbBytes = 8
)

// Adc computes a + b + carry, returning the sum limb and the outgoing carry
// (0 or 1).
func Adc(a, b, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carry)
}

// Sbb computes a - b - borrow, returning the difference limb and the outgoing
// borrow (0 or 1).
func Sbb(a, b, borrow uint64) (diff, borrowOut uint64) {
	return bits.Sub64(a, b, borrow)
}

// MulWide computes a * b, returning the low and high limbs of the 128-bit
// product.
func MulWide(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// Mac computes a + b*c, returning the low limb and the high limb of the
// result.
func Mac(a, b, c uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(b, c)
	var carry uint64
	lo, carry = bits.Add64(lo, a, 0)
	hi += carry
	return lo, hi
}

// MacCarry computes a + b*c + carry, returning the low limb and the high limb
// of the result. The high limb never overflows: (2^64-1) + (2^64-1)^2 +
// (2^64-1) < 2^128.
func MacCarry(a, b, c, carry uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(b, c)
	var cc uint64
	lo, cc = bits.Add64(lo, a, 0)
	hi += cc
	lo, cc = bits.Add64(lo, carry, 0)
	hi += cc
	return lo, hi
}
