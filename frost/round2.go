package frost

// SigningPackage bundles the message being signed with the commitment list
// collected from round one, the input round2::sign takes as a single
// argument in [original_source].
type SigningPackage struct {
	Message     []byte
	Commitments []*NonceCommitment
}

// NewSigningPackage constructs a SigningPackage. commitments must be sorted
// in ascending order by identifier, as required throughout [FROST].
func NewSigningPackage(message []byte, commitments []*NonceCommitment) *SigningPackage {
	return &SigningPackage{Message: message, Commitments: commitments}
}

// Sign runs round2::sign for a signer holding the given nonces, producing
// its SignatureShare. It is Signer.Round2 under the name
// [original_source] gives this operation.
func Sign(signer *Signer, nonces *SigningNonces, pkg *SigningPackage) (*SignatureShare, error) {
	return signer.Round2(pkg.Message, nonces, pkg.Commitments)
}
