package poseidon2

// Hasher adapts a sponge to byte input with a fixed 32-byte digest. Each
// Write is chunked into field-sized little-endian blocks independently;
// a short trailing chunk is zero-padded. Instances supply the byte codecs
// for their element type.
type Hasher[E Element[E]] struct {
	sponge     *Sponge[E]
	fieldBytes int
	decode     func([]byte) E
	encode     func(E) []byte
}

// DigestSize is the byte length of every Hasher digest.
const DigestSize = 32

// NewHasher returns a byte hasher over a fresh sponge. fieldBytes is the
// canonical byte length of one element and must divide DigestSize; decode
// maps a little-endian block of that length into the field (reducing), and
// encode maps an element back to its canonical little-endian bytes.
func NewHasher[E Element[E]](perm *Permutation[E], capacity, fieldBytes int, decode func([]byte) E, encode func(E) []byte) *Hasher[E] {
	if fieldBytes <= 0 || DigestSize%fieldBytes != 0 {
		panic("poseidon2: element byte size must divide the digest size")
	}
	return &Hasher[E]{
		sponge:     NewSponge(perm, capacity),
		fieldBytes: fieldBytes,
		decode:     decode,
		encode:     encode,
	}
}

// Write absorbs p. It never fails; the error return satisfies io.Writer.
func (h *Hasher[E]) Write(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		n := h.fieldBytes
		if len(p) < n {
			n = len(p)
		}
		chunk := p[:n]
		if n < h.fieldBytes {
			padded := make([]byte, h.fieldBytes)
			copy(padded, chunk)
			chunk = padded
		}
		h.sponge.Absorb(h.decode(chunk))
		p = p[n:]
	}
	return total, nil
}

// Sum squeezes the 32-byte digest. The sponge is committed afterwards and
// further writes panic.
func (h *Hasher[E]) Sum() [DigestSize]byte {
	var out [DigestSize]byte
	elems := h.sponge.SqueezeBatch(DigestSize / h.fieldBytes)
	off := 0
	for _, e := range elems {
		off += copy(out[off:], h.encode(e))
	}
	return out
}
