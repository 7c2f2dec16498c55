package arith

import "math/big"

// U256 is a 256-bit unsigned integer stored as 4 little-endian limbs.
// The zero value is the number 0. U256 values are copied by value; no
// operation allocates.
type U256 [4]uint64

const (
	// NumLimbs256 is the number of limbs in a U256.
	NumLimbs256 = 4
	// Bits256 is the bit width of a U256.
	Bits256 = NumLimbs256 * LimbBits
	// Bytes256 is the byte width of a U256.
	Bytes256 = NumLimbs256 * LimbBytes
)

// MaxU256 is the largest representable U256.
var MaxU256 = U256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}

// OneU256 is the multiplicative identity.
var OneU256 = U256{1}

// NewU256 returns the integer with the given little-endian limbs.
func NewU256(limbs [NumLimbs256]uint64) U256 {
	return U256(limbs)
}

// U256FromUint64 returns the integer with value v.
func U256FromUint64(v uint64) U256 {
	return U256{v}
}

// U256FromLEBytes interprets b as exactly Bytes256 little-endian bytes.
// Panics if len(b) != Bytes256.
func U256FromLEBytes(b []byte) U256 {
	if len(b) != Bytes256 {
		panic("arith: bytes are not the expected size")
	}
	var z U256
	for i := range z {
		z[i] = leUint64(b[i*LimbBytes:])
	}
	return z
}

// LEBytes returns the little-endian byte representation.
func (z U256) LEBytes() [Bytes256]byte {
	var out [Bytes256]byte
	for i, limb := range z {
		putLEUint64(out[i*LimbBytes:], limb)
	}
	return out
}

// Eq reports whether z == x. All limbs are examined.
func (z U256) Eq(x U256) bool {
	var diff uint64
	for i := range z {
		diff |= z[i] ^ x[i]
	}
	return diff == 0
}

// Ne reports whether z != x.
func (z U256) Ne(x U256) bool { return !z.Eq(x) }

// Cmp compares z and x viewed as integers, returning -1, 0 or +1. The limbs
// are scanned from most to least significant.
func (z U256) Cmp(x U256) int {
	for i := NumLimbs256 - 1; i >= 0; i-- {
		switch {
		case z[i] < x[i]:
			return -1
		case z[i] > x[i]:
			return 1
		}
	}
	return 0
}

// Lt reports whether z < x.
func (z U256) Lt(x U256) bool { return z.Cmp(x) < 0 }

// Le reports whether z <= x.
func (z U256) Le(x U256) bool { return z.Cmp(x) <= 0 }

// Gt reports whether z > x.
func (z U256) Gt(x U256) bool { return z.Cmp(x) > 0 }

// Ge reports whether z >= x.
func (z U256) Ge(x U256) bool { return z.Cmp(x) >= 0 }

// IsZero reports whether z == 0. All limbs are examined.
func (z U256) IsZero() bool {
	return z[0]|z[1]|z[2]|z[3] == 0
}

// IsOdd reports whether the least significant bit is set.
func (z U256) IsOdd() bool { return z[0]&1 == 1 }

// IsEven reports whether the least significant bit is clear.
func (z U256) IsEven() bool { return z[0]&1 == 0 }

// NumBits returns the index of the highest set bit plus one, i.e. the minimum
// number of bits needed to encode z. NumBits of zero is 0.
func (z U256) NumBits() int {
	for i := NumLimbs256 - 1; i >= 0; i-- {
		if z[i] != 0 {
			return i*LimbBits + limbLen(z[i])
		}
	}
	return 0
}

// Bit returns the i-th bit of z. Out-of-range indices read as false.
func (z U256) Bit(i int) bool {
	if i < 0 || i >= Bits256 {
		return false
	}
	return (z[i/LimbBits]>>(i%LimbBits))&1 == 1
}

// AddWithCarry sets z += x across all limbs and reports whether a carry
// escaped the most significant limb.
func (z *U256) AddWithCarry(x *U256) bool {
	var carry uint64
	for i := range z {
		z[i], carry = Adc(z[i], x[i], carry)
	}
	return carry != 0
}

// SubWithBorrow sets z -= x across all limbs and reports whether a borrow
// escaped the most significant limb.
func (z *U256) SubWithBorrow(x *U256) bool {
	var borrow uint64
	for i := range z {
		z[i], borrow = Sbb(z[i], x[i], borrow)
	}
	return borrow != 0
}

// CheckedAdd returns z + x and whether the true sum overflowed the fixed
// width.
func (z U256) CheckedAdd(x U256) (U256, bool) {
	overflow := z.AddWithCarry(&x)
	return z, overflow
}

// CheckedSub returns z - x and whether the true difference underflowed.
func (z U256) CheckedSub(x U256) (U256, bool) {
	underflow := z.SubWithBorrow(&x)
	return z, underflow
}

// WrappingAdd returns z + x modulo 2^256.
func (z U256) WrappingAdd(x U256) U256 {
	sum, _ := z.CheckedAdd(x)
	return sum
}

// Add returns z + x. Panics on overflow; use CheckedAdd where overflow is a
// runtime condition rather than a programming error.
func (z U256) Add(x U256) U256 {
	sum, overflow := z.CheckedAdd(x)
	if overflow {
		panic("arith: overflow on addition")
	}
	return sum
}

// Mul returns z * x. Panics on overflow.
func (z U256) Mul(x U256) U256 {
	lo, hi := z.MulWide(x)
	if !hi.IsZero() {
		panic("arith: overflow on multiplication")
	}
	return lo
}

// MulWide computes the full 256x256 -> 512-bit product of z and x as
// (lo, hi). Schoolbook multiply-accumulate with limb-by-limb carry
// propagation; this is the hot path of the whole package.
func (z U256) MulWide(x U256) (lo, hi U256) {
	for i := 0; i < NumLimbs256; i++ {
		var carry uint64
		for j := 0; j < NumLimbs256; j++ {
			k := i + j
			if k >= NumLimbs256 {
				hi[k-NumLimbs256], carry = MacCarry(hi[k-NumLimbs256], z[i], x[j], carry)
			} else {
				lo[k], carry = MacCarry(lo[k], z[i], x[j], carry)
			}
		}
		hi[i] = carry
	}
	return lo, hi
}

// Div2 halves z in place.
func (z *U256) Div2() {
	var t uint64
	for i := NumLimbs256 - 1; i >= 0; i-- {
		t2 := z[i] << 63
		z[i] >>= 1
		z[i] |= t
		t = t2
	}
}

// Mul2 doubles z in place and reports whether the top bit was shifted out.
func (z *U256) Mul2() bool {
	var last uint64
	for i := range z {
		t := z[i] >> 63
		z[i] = z[i]<<1 | last
		last = t
	}
	return last != 0
}

// mul2WithCarry returns 2*z and the shifted-out bit.
func (z U256) mul2WithCarry() (U256, bool) {
	carry := z.Mul2()
	return z, carry
}

// String returns the decimal representation of z.
func (z U256) String() string {
	return z.bigInt().String()
}

func (z U256) bigInt() *big.Int {
	b := z.LEBytes()
	// big.Int wants big-endian bytes.
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return new(big.Int).SetBytes(b[:])
}

// WideU256 is a 512-bit value composed of a low and a high U256. It exists
// only to compute remainders during constant derivation and is never
// persisted.
type WideU256 struct {
	Lo, Hi U256
}

// NewWideU256 returns the 512-bit value hi*2^256 + lo.
func NewWideU256(lo, hi U256) WideU256 {
	return WideU256{Lo: lo, Hi: hi}
}

// NumBits returns the minimum number of bits needed to encode z.
func (z WideU256) NumBits() int {
	if n := z.Hi.NumBits(); n != 0 {
		return n + Bits256
	}
	return z.Lo.NumBits()
}

// Bit returns the i-th bit of z.
func (z WideU256) Bit(i int) bool {
	if i >= Bits256 {
		return z.Hi.Bit(i - Bits256)
	}
	return z.Lo.Bit(i)
}

// Rem returns z mod m by binary long division: the dividend's bits are
// consumed from most to least significant while a running remainder is
// doubled, or-ed with the next bit and conditionally reduced. O(bit-width)
// multi-precision steps; meant for one-off constant derivation, not hot
// paths. Panics if m is zero.
func (z WideU256) Rem(m U256) U256 {
	if m.IsZero() {
		panic("arith: division by zero")
	}
	var remainder U256
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
