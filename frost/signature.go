package frost

import "math/big"

// Signature is a Schnorr signature (R, z) as produced by Aggregate, where R
// is the group commitment Element and z is the aggregated response Scalar.
type Signature struct {
	R *Point
	Z *big.Int
}

// SignatureShare is the per-participant contribution z_i produced by Round2,
// consumed by Aggregate to build the final Signature.
type SignatureShare struct {
	Identifier Identifier
	Z          *big.Int
}
