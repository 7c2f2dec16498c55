package arith

import (
	"encoding/binary"
	"math/bits"
)

// Radix parsing is intended for constructing cryptographic constants from
// string literals at package initialization, not for hot-path use. All
// parsers panic on malformed input: empty strings, non-ASCII bytes, digits
// outside the radix, or values that do not fit the target width.

// U256FromStringRadix parses an ASCII digit string in the given radix,
// most significant digit first, by Horner accumulation.
func U256FromStringRadix(s string, radix uint) U256 {
	if len(s) == 0 {
		panic("arith: empty string")
	}
	uintRadix := U256FromUint64(uint64(radix))
	z := U256{}
	order := OneU256
	for i := len(s) - 1; i >= 0; i-- {
		digit := U256FromUint64(parseDigit(s[i], radix))
		z = z.Add(digit.Mul(order))
		if i > 0 {
			order = uintRadix.Mul(order)
		}
	}
	return z
}

// U256FromDecimal parses a base-10 digit string.
func U256FromDecimal(s string) U256 {
	return U256FromStringRadix(s, 10)
}

// U256FromHex parses a base-16 digit string. Faster than the generic radix
// path: each nibble maps directly onto four bits of the result.
func U256FromHex(s string) U256 {
	if len(s) == 0 {
		panic("arith: empty string")
	}
	const digitsInLimb = LimbBits / 4
	var z U256
	nibble := 0
	for i := len(s) - 1; i >= 0; i-- {
		digit := parseDigit(s[i], 16)
		z[nibble/digitsInLimb] |= digit << ((nibble % digitsInLimb) * 4)
		nibble++
	}
	return z
}

// U64FromStringRadix parses an ASCII digit string in the given radix.
func U64FromStringRadix(s string, radix uint) U64 {
	if len(s) == 0 {
		panic("arith: empty string")
	}
	uintRadix := U64FromUint64(uint64(radix))
	z := U64{}
	order := OneU64
	for i := len(s) - 1; i >= 0; i-- {
		digit := U64FromUint64(parseDigit(s[i], radix))
		z = z.Add(digit.Mul(order))
		if i > 0 {
			order = uintRadix.Mul(order)
		}
	}
	return z
}

// U64FromDecimal parses a base-10 digit string.
func U64FromDecimal(s string) U64 {
	return U64FromStringRadix(s, 10)
}

// U64FromHex parses a base-16 digit string.
func U64FromHex(s string) U64 {
	if len(s) == 0 {
		panic("arith: empty string")
	}
	const digitsInLimb = LimbBits / 4
	var z U64
	nibble := 0
	for i := len(s) - 1; i >= 0; i-- {
		digit := parseDigit(s[i], 16)
		z[nibble/digitsInLimb] |= digit << ((nibble % digitsInLimb) * 4)
		nibble++
	}
	return z
}

// parseDigit converts one ASCII byte to its value in the given radix.
func parseDigit(b byte, radix uint) uint64 {
	if b >= 0x80 {
		panic("arith: non-ASCII character found")
	}
	var v uint
	switch {
	case b >= '0' && b <= '9':
		v = uint(b - '0')
	case b >= 'a' && b <= 'z':
		v = uint(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		v = uint(b-'A') + 10
	default:
		panic("arith: invalid digit")
	}
	if v >= radix {
		panic("arith: invalid digit")
	}
	return uint64(v)
}

func limbLen(x uint64) int {
	return bits.Len64(x)
}

func leUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func putLEUint64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}
