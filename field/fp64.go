package field

import "github.com/goseidon/goseidon/arith"

// Params64 describes a prime field on a single-limb modulus. See Params256
// for the meaning of the Montgomery constants.
type Params64 struct {
	Modulus   arith.U64
	Generator Element64
	R         arith.U64
	R2        arith.U64
	Inv       uint64

	hasSpareBit bool
}

// NewParams64 derives the field parameters from a decimal modulus and
// generator. Panics if the modulus is even.
func NewParams64(modulus, generator string) *Params64 {
	m := arith.U64FromDecimal(modulus)
	if m.IsEven() {
		panic("field: modulus must be odd")
	}
	p := &Params64{
		Modulus:     m,
		hasSpareBit: m[0]>>63 == 0,
	}
	p.R = arith.NewWideU64(arith.U64{}, arith.OneU64).Rem(m)
	lo, hi := p.R.MulWide(p.R)
	p.R2 = arith.NewWideU64(lo, hi).Rem(m)
	p.Inv = montInv(m[0])
	p.Generator = p.New(arith.U64FromDecimal(generator))
	return p
}

// Element64 is an element of a Params64 field in Montgomery form.
type Element64 struct {
	fp *Params64
	v  arith.U64
}

// New returns the field element with integer value v, reduced into
// Montgomery form.
func (p *Params64) New(v arith.U64) Element64 {
	z := Element64{fp: p, v: v}
	if z.v.IsZero() {
		return z
	}
	return z.montMul(Element64{fp: p, v: p.R2})
}

// NewUnchecked wraps v as an already-reduced Montgomery representation.
func (p *Params64) NewUnchecked(v arith.U64) Element64 {
	return Element64{fp: p, v: v}
}

// Zero returns the additive identity.
func (p *Params64) Zero() Element64 {
	return Element64{fp: p}
}

// One returns the multiplicative identity.
func (p *Params64) One() Element64 {
	return Element64{fp: p, v: p.R}
}

// FromHex parses a base-16 string into a field element, reducing it.
func (p *Params64) FromHex(s string) Element64 {
	return p.New(arith.U64FromHex(s))
}

// FromBigInt returns the element with canonical integer value v, or
// ok=false if v >= Modulus.
func (p *Params64) FromBigInt(v arith.U64) (Element64, bool) {
	if v.Ge(p.Modulus) {
		return Element64{}, false
	}
	return p.New(v), true
}

// FromUint64 returns the element with value v mod Modulus. A uint64 can
// exceed a one-limb modulus, so unlike the Params256 variant this always
// reduces and never panics.
func (p *Params64) FromUint64(v uint64) Element64 {
	return p.New(arith.U64FromUint64(v))
}

// FromInt64 returns the element with value v mod Modulus.
func (p *Params64) FromInt64(v int64) Element64 {
	if v >= 0 {
		return p.FromUint64(uint64(v))
	}
	return p.FromUint64(uint64(-v)).Neg()
}

func (z Element64) samefield(x Element64) *Params64 {
	if z.fp == nil || z.fp != x.fp {
		panic("field: mismatched field parameters")
	}
	return z.fp
}

// Params returns the field this element belongs to.
func (z Element64) Params() *Params64 { return z.fp }

// BigInt returns the canonical integer value of z.
func (z Element64) BigInt() arith.U64 {
	p := z.fp
	k := z.v[0] * p.Inv
	_, carry := arith.Mac(z.v[0], k, p.Modulus[0])
	return arith.U64{carry}
}

// Uint64 returns the canonical integer value of z as a machine word.
func (z Element64) Uint64() uint64 {
	v := z.BigInt()
	return v[0]
}

// Add returns z + x.
func (z Element64) Add(x Element64) Element64 {
	z.samefield(x)
	carry := z.v.AddWithCarry(&x.v)
	return z.reduce(carry)
}

// Sub returns z - x.
func (z Element64) Sub(x Element64) Element64 {
	p := z.samefield(x)
	if x.v.Gt(z.v) {
		z.v.AddWithCarry(&p.Modulus)
	}
	z.v.SubWithBorrow(&x.v)
	return z
}

// Double returns 2z.
func (z Element64) Double() Element64 {
	carry := z.v.Mul2()
	return z.reduce(carry)
}

// Neg returns -z.
func (z Element64) Neg() Element64 {
	if z.v.IsZero() {
		return z
	}
	tmp := z.fp.Modulus
	tmp.SubWithBorrow(&z.v)
	z.v = tmp
	return z
}

// Mul returns z * x.
func (z Element64) Mul(x Element64) Element64 {
	z.samefield(x)
	return z.montMul(x)
}

// Square returns z^2.
func (z Element64) Square() Element64 {
	return z.montMul(z)
}

// Div returns z / x. Panics if x is zero.
func (z Element64) Div(x Element64) Element64 {
	inv, ok := x.Inverse()
	if !ok {
		panic("field: division by zero")
	}
	return z.Mul(inv)
}

// Exp returns z^k.
func (z Element64) Exp(k uint64) Element64 {
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

// Inverse returns z^-1 and true, or ok=false for zero.
func (z Element64) Inverse() (Element64, bool) {
	if z.v.IsZero() {
		return Element64{}, false
	}
	p := z.fp

	one := arith.OneU64
	u := z.v
	v := p.Modulus
	b := Element64{fp: p, v: p.R2}
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

func (z *Element64) halve() {
	p := z.fp
	if z.v.IsEven() {
		z.v.Div2()
		return
	}
	carry := z.v.AddWithCarry(&p.Modulus)
	z.v.Div2()
	if !p.hasSpareBit && carry {
		z.v[0] |= 1 << 63
	}
}

// Equal reports whether z == x in the field.
func (z Element64) Equal(x Element64) bool {
	z.samefield(x)
	return z.v.Eq(x.v)
}

// IsZero reports whether z is the additive identity.
func (z Element64) IsZero() bool { return z.v.IsZero() }

// IsOne reports whether z is the multiplicative identity.
func (z Element64) IsOne() bool { return z.v.Eq(z.fp.R) }

// Cmp compares canonical integer values for container ordering.
func (z Element64) Cmp(x Element64) int {
	z.samefield(x)
	a, b := z.BigInt(), x.BigInt()
	return a.Cmp(b)
}

// Zeroize clears the element value in place.
func (z *Element64) Zeroize() {
	z.v = arith.U64{}
}

// String returns the canonical decimal representation.
func (z Element64) String() string {
	v := z.BigInt()
	return v.String()
}

// montMul multiplies Montgomery-form values. The one-limb reduction is the
// general pass collapsed to a single step.
func (z Element64) montMul(x Element64) Element64 {
	p := z.fp
	lo, hi := arith.MulWide(z.v[0], x.v[0])

	tmp := lo * p.Inv
	_, carry := arith.Mac(lo, tmp, p.Modulus[0])
	sum, carry2 := arith.Adc(hi, carry, 0)

	z.v = arith.U64{sum}
	return z.reduce(carry2 != 0)
}

func (z Element64) reduce(carry bool) Element64 {
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
