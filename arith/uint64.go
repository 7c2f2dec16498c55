package arith

import "strconv"

// U64 is a 64-bit unsigned integer carried as a single limb. It mirrors the
// U256 operation surface so field code over one-limb moduli (Goldilocks,
// BabyBear) reads the same as the four-limb code.
type U64 [1]uint64

const (
	// NumLimbs64 is the number of limbs in a U64.
	NumLimbs64 = 1
	// Bits64 is the bit width of a U64.
	Bits64 = NumLimbs64 * LimbBits
	// Bytes64 is the byte width of a U64.
	Bytes64 = NumLimbs64 * LimbBytes
)

// MaxU64 is the largest representable U64.
var MaxU64 = U64{^uint64(0)}

// OneU64 is the multiplicative identity.
var OneU64 = U64{1}

// U64FromUint64 returns the integer with value v.
func U64FromUint64(v uint64) U64 {
	return U64{v}
}

// U64FromLEBytes interprets b as exactly Bytes64 little-endian bytes.
// Panics if len(b) != Bytes64.
func U64FromLEBytes(b []byte) U64 {
	if len(b) != Bytes64 {
		panic("arith: bytes are not the expected size")
	}
	return U64{leUint64(b)}
}

// LEBytes returns the little-endian byte representation.
func (z U64) LEBytes() [Bytes64]byte {
	var out [Bytes64]byte
	putLEUint64(out[:], z[0])
	return out
}

// Uint64 returns z as a uint64.
func (z U64) Uint64() uint64 { return z[0] }

// Eq reports whether z == x.
func (z U64) Eq(x U64) bool { return z[0] == x[0] }

// Ne reports whether z != x.
func (z U64) Ne(x U64) bool { return z[0] != x[0] }

// Cmp compares z and x, returning -1, 0 or +1.
func (z U64) Cmp(x U64) int {
	switch {
	case z[0] < x[0]:
		return -1
	case z[0] > x[0]:
		return 1
	}
	return 0
}

// Lt reports whether z < x.
func (z U64) Lt(x U64) bool { return z[0] < x[0] }

// Le reports whether z <= x.
func (z U64) Le(x U64) bool { return z[0] <= x[0] }

// Gt reports whether z > x.
func (z U64) Gt(x U64) bool { return z[0] > x[0] }

// Ge reports whether z >= x.
func (z U64) Ge(x U64) bool { return z[0] >= x[0] }

// IsZero reports whether z == 0.
func (z U64) IsZero() bool { return z[0] == 0 }

// IsOdd reports whether the least significant bit is set.
func (z U64) IsOdd() bool { return z[0]&1 == 1 }

// IsEven reports whether the least significant bit is clear.
func (z U64) IsEven() bool { return z[0]&1 == 0 }

// NumBits returns the index of the highest set bit plus one.
func (z U64) NumBits() int { return limbLen(z[0]) }

// Bit returns the i-th bit of z. Out-of-range indices read as false.
func (z U64) Bit(i int) bool {
	if i < 0 || i >= Bits64 {
		return false
	}
	return (z[0]>>i)&1 == 1
}

// AddWithCarry sets z += x and reports whether the sum overflowed.
func (z *U64) AddWithCarry(x *U64) bool {
	var carry uint64
	z[0], carry = Adc(z[0], x[0], 0)
	return carry != 0
}

// SubWithBorrow sets z -= x and reports whether the difference underflowed.
func (z *U64) SubWithBorrow(x *U64) bool {
	var borrow uint64
	z[0], borrow = Sbb(z[0], x[0], 0)
	return borrow != 0
}

// CheckedAdd returns z + x and whether the true sum overflowed.
func (z U64) CheckedAdd(x U64) (U64, bool) {
	overflow := z.AddWithCarry(&x)
	return z, overflow
}

// CheckedSub returns z - x and whether the true difference underflowed.
func (z U64) CheckedSub(x U64) (U64, bool) {
	underflow := z.SubWithBorrow(&x)
	return z, underflow
}

// WrappingAdd returns z + x modulo 2^64.
func (z U64) WrappingAdd(x U64) U64 {
	sum, _ := z.CheckedAdd(x)
	return sum
}

// Add returns z + x. Panics on overflow.
func (z U64) Add(x U64) U64 {
	sum, overflow := z.CheckedAdd(x)
	if overflow {
		panic("arith: overflow on addition")
	}
	return sum
}

// Mul returns z * x. Panics on overflow.
func (z U64) Mul(x U64) U64 {
	lo, hi := z.MulWide(x)
	if !hi.IsZero() {
		panic("arith: overflow on multiplication")
	}
	return lo
}

// MulWide computes the full 64x64 -> 128-bit product of z and x as (lo, hi).
func (z U64) MulWide(x U64) (lo, hi U64) {
	l, h := MulWide(z[0], x[0])
	return U64{l}, U64{h}
}

// Div2 halves z in place.
func (z *U64) Div2() { z[0] >>= 1 }

// Mul2 doubles z in place and reports whether the top bit was shifted out.
func (z *U64) Mul2() bool {
	last := z[0] >> 63
	z[0] <<= 1
	return last != 0
}

func (z U64) mul2WithCarry() (U64, bool) {
	carry := z.Mul2()
	return z, carry
}

// String returns the decimal representation of z.
func (z U64) String() string {
	return strconv.FormatUint(z[0], 10)
}

// WideU64 is a 128-bit value composed of a low and a high U64.
type WideU64 struct {
	Lo, Hi U64
}

// NewWideU64 returns the 128-bit value hi*2^64 + lo.
func NewWideU64(lo, hi U64) WideU64 {
	return WideU64{Lo: lo, Hi: hi}
}

// NumBits returns the minimum number of bits needed to encode z.
func (z WideU64) NumBits() int {
	if n := z.Hi.NumBits(); n != 0 {
		return n + Bits64
	}
	return z.Lo.NumBits()
}

// Bit returns the i-th bit of z.
func (z WideU64) Bit(i int) bool {
	if i >= Bits64 {
		return z.Hi.Bit(i - Bits64)
	}
	return z.Lo.Bit(i)
}

// Rem returns z mod m by binary long division. Panics if m is zero.
func (z WideU64) Rem(m U64) U64 {
	if m.IsZero() {
		panic("arith: division by zero")
	}
	var remainder U64
	for i := z.NumBits() - 1; i >= 0; i-- {
		var carry bool
		remainder, carry = remainder.mul2WithCarry()
		if z.Bit(i) {
			remainder[0] |= 1
		}
		if carry || remainder.Ge(m) {
			remainder.SubWithBorrow(&m)
		}
	}
	return remainder
}
