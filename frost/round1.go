package frost

// SigningNonces is an alias for the nonce pair Round1 produces, named to
// match [FROST] section 5.1's round1::commit vocabulary directly.
type SigningNonces = Nonce

// SigningCommitments is an alias for the public commitment Round1 produces,
// named to match [FROST] section 5.1's round1::commit vocabulary directly.
type SigningCommitments = NonceCommitment

// Commit runs round1::commit for a signer holding the given key package: it
// is Signer.Round1 under the name [original_source] gives this operation.
func Commit(signer *Signer) (*SigningNonces, *SigningCommitments, error) {
	return signer.Round1()
}
