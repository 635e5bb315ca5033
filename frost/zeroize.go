package frost

import "math/big"

// zeroizeBytes overwrites b in place with zero bytes. It is used to scrub
// the random bytes mixed into each nonce once the nonce has been derived,
// per the secret-erasure contract [FROST] expects of a conforming
// implementation.
func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroizeScalar overwrites the words backing a *big.Int with zeros and resets
// it to 0. big.Int has no exported zeroization primitive, so this reaches
// into the value through Bits to clear the backing array in place
// rather than leaving the old limbs live in a dropped allocation.
func zeroizeScalar(s *big.Int) {
	if s == nil {
		return
	}
	bits := s.Bits()
	for i := range bits {
		bits[i] = 0
	}
	s.SetInt64(0)
}

// Nonce.Zeroize scrubs the hiding and binding nonce scalars. Callers MUST
// invoke this once a nonce has been consumed by Round2 and must never reuse
// a nonce across two signing attempts, since nonce reuse leaks the signing
// share.
func (n *Nonce) Zeroize() {
	if n == nil {
		return
	}
	zeroizeScalar(n.hidingNonce)
	zeroizeScalar(n.bindingNonce)
}
