package frost

import "math/big"

// Ciphersuite interface abstracts out the particular ciphersuite implementation
// used for the [FROST] protocol execution. This is a strategy design pattern
// allowing [FROST] to run over different prime-order groups and hash
// functions, for example secp256k1/BIP-340, ecGFp5/Poseidon-256, or
// ristretto255/BLAKE2b. A [FROST] ciphersuite must specify the underlying
// prime-order group details and the cryptographic hash functions tied to it.
type Ciphersuite interface {
	Hashing
	Curve() Curve
}

// Hashing interface abstracts out hash function implementations specific to
// the ciphersuite used.
//
// [FROST] requires the use of a cryptographically secure hash function,
// generically written as H. Using H, [FROST] introduces distinct domain-separated
// hashes, H1 through H5. A complete ciphersuite additionally fixes a
// domain-separated hash for distributed key generation (HDKG) and one for
// deriving a canonical participant identifier from an arbitrary byte string
// (HID). The details of each hash vary based on ciphersuite.
type Hashing interface {
	H1(m []byte) *big.Int
	H2(m []byte, ms ...[]byte) *big.Int
	H3(m []byte, ms ...[]byte) *big.Int
	H4(m []byte) []byte
	H5(m []byte) []byte
	HDKG(m []byte) *big.Int
	HID(m []byte) (*big.Int, error)
}

// Curve interface abstracts out the particular prime-order group
// implementation specific to the ciphersuite used.
type Curve interface {
	// EcBaseMul returns k*G, where G is the group generator.
	EcBaseMul(k *big.Int) *Point
	// EcMul returns k*P.
	EcMul(p *Point, k *big.Int) *Point
	// EcAdd returns the sum of two group elements.
	EcAdd(a, b *Point) *Point
	// EcSub returns the difference of two group elements.
	EcSub(a, b *Point) *Point
	// Identity returns the group's identity element.
	Identity() *Point
	// Order returns the order of the group generated by the generator.
	Order() *big.Int
	// IsPointOnCurve reports whether p is a valid, non-identity element of
	// the group.
	IsPointOnCurve(p *Point) bool
	// SerializedPointLength returns the byte length of a serialized group
	// element.
	SerializedPointLength() int
	// SerializePoint serializes p to its canonical byte encoding.
	SerializePoint(p *Point) []byte
	// DeserializePoint parses the canonical byte encoding of a group
	// element. It returns nil if the encoding is malformed or represents
	// the identity element.
	DeserializePoint(data []byte) *Point
}

// Point represents a valid element of the Curve's group. Curve
// implementations are free to interpret X and Y however their underlying
// representation requires; callers outside of a Curve implementation must
// treat Point as opaque and only operate on it through Curve methods.
type Point struct {
	X *big.Int
	Y *big.Int
}
