// Package field implements prime-field elements kept permanently in
// Montgomery form. Widths mirror the arith package: Params64/Element64 for
// one-limb moduli and Params256/Element256 for four-limb moduli.
//
// An element is bound to its *Params at construction; every binary operation
// panics if the operands belong to different fields. This is the runtime
// rendering of a compile-time parameter binding: elements of different
// moduli never interoperate.
package field

import "github.com/goseidon/goseidon/arith"

// Params256 describes a prime field on a four-limb modulus, together with
// the Montgomery constants derived from it. Construct with NewParams256;
// a Params256 is immutable afterwards and safe to share.
type Params256 struct {
	// Modulus is the field characteristic. Must be odd.
	Modulus arith.U256
	// Generator is a multiplicative generator of the field.
	Generator Element256
	// R is 2^256 mod Modulus, the Montgomery radix residue.
	R arith.U256
	// R2 is R^2 mod Modulus, used to enter Montgomery form.
	R2 arith.U256
	// Inv is -Modulus^{-1} mod 2^64, used by Montgomery reduction.
	Inv uint64

	// hasSpareBit is set when the modulus top bit is clear, letting
	// additions skip carry tracking.
	hasSpareBit bool
}

// NewParams256 derives the field parameters from a decimal modulus and
// generator. Panics if the modulus is even (Montgomery arithmetic requires
// an odd modulus) or if either string fails to parse.
func NewParams256(modulus, generator string) *Params256 {
	m := arith.U256FromDecimal(modulus)
	if m.IsEven() {
		panic("field: modulus must be odd")
	}
	p := &Params256{
		Modulus:     m,
		hasSpareBit: m[arith.NumLimbs256-1]>>63 == 0,
	}
	// R = 2^256 mod m, computed as the remainder of the wide value
	// (lo=0, hi=1).
	p.R = arith.NewWideU256(arith.U256{}, arith.OneU256).Rem(m)
	lo, hi := p.R.MulWide(p.R)
	p.R2 = arith.NewWideU256(lo, hi).Rem(m)
	p.Inv = montInv(m[0])
	p.Generator = p.New(arith.U256FromDecimal(generator))
	return p
}

// montInv computes -m0^{-1} mod 2^64 by exponentiating to
// phi(2^64)-1 = 2^63-1 with square-and-multiply.
func montInv(m0 uint64) uint64 {
	inv := uint64(1)
	for i := 0; i < 63; i++ {
		inv *= inv
		inv *= m0
	}
	return -inv
}

// Element256 is an element of a Params256 field, stored in Montgomery form
// and always reduced below the modulus. The zero value is not usable;
// elements come from their Params256.
type Element256 struct {
	fp *Params256
	v  arith.U256
}

// New returns the field element with integer value v, which need not be
// below the modulus; the result is reduced into Montgomery form.
func (p *Params256) New(v arith.U256) Element256 {
	z := Element256{fp: p, v: v}
	if z.v.IsZero() {
		return z
	}
	return z.montMul(Element256{fp: p, v: p.R2})
}

// NewUnchecked wraps v as-is. The caller asserts v is already a reduced
// Montgomery representation; use New everywhere else.
func (p *Params256) NewUnchecked(v arith.U256) Element256 {
	return Element256{fp: p, v: v}
}

// Zero returns the additive identity.
func (p *Params256) Zero() Element256 {
	return Element256{fp: p}
}

// One returns the multiplicative identity.
func (p *Params256) One() Element256 {
	return Element256{fp: p, v: p.R}
}

// FromHex parses a base-16 string into a field element, reducing it.
func (p *Params256) FromHex(s string) Element256 {
	return p.New(arith.U256FromHex(s))
}

// FromBigInt returns the element with canonical integer value v, or
// ok=false if v is not a canonical representative (v >= Modulus). Unlike
// New, it never reduces.
func (p *Params256) FromBigInt(v arith.U256) (Element256, bool) {
	if v.Ge(p.Modulus) {
		return Element256{}, false
	}
	return p.New(v), true
}

// FromUint64 returns the element with value v. Unlike the one-limb
// Params64 variant it never reduces: v must already be canonical, and the
// conversion panics otherwise. A modulus small enough for a uint64 to be
// non-canonical does not belong in a four-limb field.
func (p *Params256) FromUint64(v uint64) Element256 {
	z, ok := p.FromBigInt(arith.U256FromUint64(v))
	if !ok {
		panic("field: value out of range")
	}
	return z
}

// FromInt64 returns the element with value v mod Modulus.
func (p *Params256) FromInt64(v int64) Element256 {
	if v >= 0 {
		return p.FromUint64(uint64(v))
	}
	return p.FromUint64(uint64(-v)).Neg()
}

func (z Element256) samefield(x Element256) *Params256 {
	if z.fp == nil || z.fp != x.fp {
		panic("field: mismatched field parameters")
	}
	return z.fp
}

// Params returns the field this element belongs to.
func (z Element256) Params() *Params256 { return z.fp }

// BigInt returns the canonical integer value of z (below the modulus),
// leaving Montgomery form via one reduction pass.
func (z Element256) BigInt() arith.U256 {
	p := z.fp
	r := z.v
	for i := 0; i < arith.NumLimbs256; i++ {
		k := r[i] * p.Inv
		_, carry := arith.Mac(r[i], k, p.Modulus[0])
		for j := 1; j < arith.NumLimbs256; j++ {
			r[(j+i)%arith.NumLimbs256], carry = arith.MacCarry(r[(j+i)%arith.NumLimbs256], k, p.Modulus[j], carry)
		}
		r[i] = carry
	}
	return r
}

// Add returns z + x.
func (z Element256) Add(x Element256) Element256 {
	z.samefield(x)
	carry := z.v.AddWithCarry(&x.v)
	return z.reduce(carry)
}

// Sub returns z - x.
func (z Element256) Sub(x Element256) Element256 {
	p := z.samefield(x)
	if x.v.Gt(z.v) {
		z.v.AddWithCarry(&p.Modulus)
	}
	z.v.SubWithBorrow(&x.v)
	return z
}

// Double returns 2z.
func (z Element256) Double() Element256 {
	carry := z.v.Mul2()
	return z.reduce(carry)
}

// Neg returns -z, i.e. Modulus - z for non-zero z.
func (z Element256) Neg() Element256 {
	if z.v.IsZero() {
		return z
	}
	tmp := z.fp.Modulus
	tmp.SubWithBorrow(&z.v)
	z.v = tmp
	return z
}

// Mul returns z * x via Montgomery multiplication.
func (z Element256) Mul(x Element256) Element256 {
	z.samefield(x)
	return z.montMul(x)
}

// Square returns z^2.
func (z Element256) Square() Element256 {
	return z.montMul(z)
}

// Div returns z / x. Panics if x is zero.
func (z Element256) Div(x Element256) Element256 {
	inv, ok := x.Inverse()
	if !ok {
		panic("field: division by zero")
	}
	return z.Mul(inv)
}

// Exp returns z^k.
func (z Element256) Exp(k uint64) Element256 {
	res := z.fp.One()
	if k == 0 {
		return res
	}
	for i := arith.LimbBits - 1; i >= 0; i-- {
		res = res.Square()
		if (k>>i)&1 == 1 {
			res = res.Mul(z)
		}
	}
	return res
}

// Inverse returns z^-1 and true, or ok=false when z is the additive
// identity. Binary extended Euclid (Guajardo-Kumar-Paar-Pelzl algorithm 16).
func (z Element256) Inverse() (Element256, bool) {
	if z.v.IsZero() {
		return Element256{}, false
	}
	p := z.fp

	one := arith.OneU256
	u := z.v
	v := p.Modulus
	b := Element256{fp: p, v: p.R2}
	c := p.Zero()

	for u.Ne(one) && v.Ne(one) {
		for u.IsEven() {
			u.Div2()
			b.halve()
		}
		for v.IsEven() {
			v.Div2()
			c.halve()
		}
		if v.Lt(u) {
			u.SubWithBorrow(&v)
			b = b.Sub(c)
		} else {
			v.SubWithBorrow(&u)
			c = c.Sub(b)
		}
	}
	if u.Eq(one) {
		return b, true
	}
	return c, true
}

// halve divides the raw Montgomery value by two, adding the modulus first
// when it is odd.
func (z *Element256) halve() {
	p := z.fp
	if z.v.IsEven() {
		z.v.Div2()
		return
	}
	carry := z.v.AddWithCarry(&p.Modulus)
	z.v.Div2()
	if !p.hasSpareBit && carry {
		z.v[arith.NumLimbs256-1] |= 1 << 63
	}
}

// Equal reports whether z == x in the field.
func (z Element256) Equal(x Element256) bool {
	z.samefield(x)
	return z.v.Eq(x.v)
}

// IsZero reports whether z is the additive identity.
func (z Element256) IsZero() bool { return z.v.IsZero() }

// IsOne reports whether z is the multiplicative identity.
func (z Element256) IsOne() bool { return z.v.Eq(z.fp.R) }

// Cmp compares canonical integer values. This order supports sorted
// containers only; it has no algebraic meaning in a field.
func (z Element256) Cmp(x Element256) int {
	z.samefield(x)
	a, b := z.BigInt(), x.BigInt()
	return a.Cmp(b)
}

// Zeroize clears the element value in place for secret hygiene.
func (z *Element256) Zeroize() {
	z.v = arith.U256{}
}

// String returns the canonical decimal representation.
func (z Element256) String() string {
	v := z.BigInt()
	return v.String()
}

// montMul multiplies two Montgomery-form values: full schoolbook product
// followed by a Montgomery reduction pass, then a conditional final
// subtraction.
func (z Element256) montMul(x Element256) Element256 {
	p := z.fp
	lo, hi := z.v.MulWide(x.v)

	var carry2 uint64
	for i := 0; i < arith.NumLimbs256; i++ {
		tmp := lo[i] * p.Inv
		_, carry := arith.Mac(lo[i], tmp, p.Modulus[0])
		for j := 1; j < arith.NumLimbs256; j++ {
			k := i + j
			if k >= arith.NumLimbs256 {
				hi[k-arith.NumLimbs256], carry = arith.MacCarry(hi[k-arith.NumLimbs256], tmp, p.Modulus[j], carry)
			} else {
				lo[k], carry = arith.MacCarry(lo[k], tmp, p.Modulus[j], carry)
			}
		}
		hi[i], carry2 = arith.Adc(hi[i], carry, carry2)
	}

	z.v = hi
	return z.reduce(carry2 != 0)
}

// reduce brings the raw value back below the modulus after an addition or
// reduction step that may have overflowed by at most one modulus.
func (z Element256) reduce(carry bool) Element256 {
	p := z.fp
	if p.hasSpareBit {
		if z.v.Ge(p.Modulus) {
			z.v.SubWithBorrow(&p.Modulus)
		}
	} else if carry || z.v.Ge(p.Modulus) {
		z.v.SubWithBorrow(&p.Modulus)
	}
	return z
}
