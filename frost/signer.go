package frost

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Signer represents a single participant of the [FROST] signing protocol
// holding a signing share produced by dealer key generation (see package
// keys).
type Signer struct {
	Participant

	signerIndex    Identifier // i in [FROST]
	secretKeyShare *big.Int   // sk_i in [FROST]
}

// NewSigner creates a Signer bound to the given identifier, secret key
// share, and group public key.
func NewSigner(
	ciphersuite Ciphersuite,
	signerIndex Identifier,
	secretKeyShare *big.Int,
	groupPublicKey *Point,
) (*Signer, error) {
	if err := signerIndex.Validate(); err != nil {
		return nil, err
	}
	if secretKeyShare == nil || secretKeyShare.Sign() == 0 {
		return nil, ErrInvalidZeroScalar
	}

	return &Signer{
		Participant:    Participant{ciphersuite: ciphersuite, publicKey: groupPublicKey},
		signerIndex:    signerIndex,
		secretKeyShare: secretKeyShare,
	}, nil
}

// Nonce holds the pair of secret nonce Scalars produced by Round1. Callers
// must call Zeroize on it immediately after Round2 consumes it and must
// never reuse a Nonce across two signing attempts.
type Nonce struct {
	hidingNonce  *big.Int
	bindingNonce *big.Int
}

// Round1 implements the Round One - Commitment phase from [FROST], section
// 5.1. Round One - Commitment. It samples a fresh, hedged nonce pair and
// returns both the secret nonces and the public commitment to be broadcast
// to the coordinator.
func (s *Signer) Round1() (*Nonce, *NonceCommitment, error) {
	hn, err := s.generateNonce(s.secretKeyShare.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("hiding nonce generation failed: %w", err)
	}
	bn, err := s.generateNonce(s.secretKeyShare.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("binding nonce generation failed: %w", err)
	}

	curve := s.ciphersuite.Curve()
	hnc := curve.EcBaseMul(hn)
	bnc := curve.EcBaseMul(bn)

	return &Nonce{hn, bn}, &NonceCommitment{s.signerIndex, hnc, bnc}, nil
}

// generateNonce implements def nonce_generate(secret) from [FROST] section
// 4.1. Nonce Generation: a hedged nonce derived from fresh randomness mixed
// with the signer's secret, so a broken or predictable RNG alone cannot
// leak the secret share through a reused nonce.
func (s *Signer) generateNonce(secret []byte) (*big.Int, error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, err
	}
	defer zeroizeBytes(randomBytes)

	return s.ciphersuite.H3(randomBytes, secret), nil
}

// Round2 implements the Round Two - Signature Share Generation phase from
// [FROST], section 5.2 Round Two - Signature Share Generation.
func (s *Signer) Round2(
	message []byte,
	nonce *Nonce,
	commitments []*NonceCommitment,
) (*SignatureShare, error) {
	validationErrors, participants := s.validateCommitments(commitments, &s.signerIndex)
	if len(validationErrors) != 0 {
		return nil, errors.Join(validationErrors...)
	}

	bindingFactor := s.computeBindingFactor(message, commitments)

	groupCommitment := s.computeGroupCommitment(commitments, bindingFactor)

	lambda := s.deriveInterpolatingValue(s.signerIndex, participants)

	challenge := s.computeChallenge(message, groupCommitment)

	order := s.ciphersuite.Curve().Order()

	bnbf := new(big.Int).Mul(nonce.bindingNonce, bindingFactor)
	lski := new(big.Int).Mul(lambda, s.secretKeyShare)
	lskic := new(big.Int).Mul(lski, challenge)

	sigShare := new(big.Int).Add(nonce.hidingNonce, new(big.Int).Add(bnbf, lskic))
	sigShare.Mod(sigShare, order)

	return &SignatureShare{Identifier: s.signerIndex, Z: sigShare}, nil
}

// VerifyShare verifies an individual signature share against the signer's
// own public verification share Y_i, as recommended by [FROST] so that a
// coordinator can identify a misbehaving signer rather than only learning
// that the aggregated signature is invalid.
func (s *Signer) VerifyShare(
	message []byte,
	share *SignatureShare,
	commitments []*NonceCommitment,
	verifyingShare *Point,
) error {
	validationErrors, participants := s.validateCommitments(commitments, &share.Identifier)
	if len(validationErrors) != 0 {
		return errors.Join(validationErrors...)
	}

	bindingFactor := s.computeBindingFactor(message, commitments)
	groupCommitment := s.computeGroupCommitment(commitments, bindingFactor)
	challenge := s.computeChallenge(message, groupCommitment)
	lambda := s.deriveInterpolatingValue(share.Identifier, participants)

	var commitment *NonceCommitment
	for _, c := range commitments {
		if c.Identifier == share.Identifier {
			commitment = c
			break
		}
	}

	return s.verifySignatureShare(commitment, share, bindingFactor, challenge, lambda, verifyingShare)
}
