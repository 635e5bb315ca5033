package frost

import (
	"errors"
	"fmt"
	"math/big"
)

// Coordinator represents the coordinator of the [FROST] signing protocol: it
// collects round one commitments and round two signature shares from a
// threshold of signers and aggregates them into a single Schnorr signature.
// The Coordinator does not hold any secret key material.
type Coordinator struct {
	Participant

	threshold int
	groupSize int
}

// NewCoordinator creates a new [FROST] Coordinator instance bound to a group
// public key, a signing threshold, and the total number of signers in the
// group.
func NewCoordinator(
	ciphersuite Ciphersuite,
	publicKey *Point,
	threshold int,
	groupSize int,
) *Coordinator {
	return &Coordinator{
		Participant: Participant{
			ciphersuite: ciphersuite,
			publicKey:   publicKey,
		},
		threshold: threshold,
		groupSize: groupSize,
	}
}

// Aggregate implements Signature Share Aggregation from [FROST], section
// 5.3. Signature Share Aggregation. Every signature share is verified
// against the signer's own verifying share from publicKeyPackage before
// being folded into the aggregate; the first invalid share encountered
// aborts aggregation with ErrInvalidSignatureShare rather than returning a
// signature that silently fails to verify.
func (c *Coordinator) Aggregate(
	message []byte,
	commitments []*NonceCommitment,
	signatureShares []*SignatureShare,
	publicKeyPackage *PublicKeyPackage,
) (*Signature, error) {
	if len(commitments) != len(signatureShares) {
		return nil, fmt.Errorf(
			"%w; has [%d] commitments and [%d] signature shares",
			ErrMismatchedShares, len(commitments), len(signatureShares),
		)
	}

	if len(commitments) < c.threshold {
		return nil, fmt.Errorf(
			"not enough shares; has [%d] for threshold [%d]",
			len(commitments), c.threshold,
		)
	}

	if len(commitments) > c.groupSize {
		return nil, fmt.Errorf(
			"too many shares; has [%d] for group size [%d]",
			len(commitments), c.groupSize,
		)
	}

	validationErrors, participants := c.validateCommitments(commitments, nil)
	if len(validationErrors) != 0 {
		return nil, errors.Join(validationErrors...)
	}

	bindingFactor := c.computeBindingFactor(message, commitments)
	groupCommitment := c.computeGroupCommitment(commitments, bindingFactor)

	curve := c.ciphersuite.Curve()
	if !curve.IsPointOnCurve(groupCommitment) {
		return nil, ErrInvalidGroupCommitment
	}

	challenge := c.computeChallenge(message, groupCommitment)
	curveOrder := curve.Order()

	commitmentByIdentifier := make(map[Identifier]*NonceCommitment, len(commitments))
	for _, commitment := range commitments {
		commitmentByIdentifier[commitment.Identifier] = commitment
	}

	z := big.NewInt(0)
	for _, share := range signatureShares {
		commitment, ok := commitmentByIdentifier[share.Identifier]
		if !ok {
			return nil, fmt.Errorf("%w: from participant [%d]", ErrMissingCommitment, share.Identifier)
		}

		verifyingShare, ok := publicKeyPackage.VerifyingShares[share.Identifier]
		if !ok {
			return nil, fmt.Errorf("%w: [%d]", ErrUnknownIdentifier, share.Identifier)
		}

		lambda := c.deriveInterpolatingValue(share.Identifier, participants)

		if err := c.verifySignatureShare(
			commitment, share, bindingFactor, challenge, lambda, verifyingShare,
		); err != nil {
			return nil, err
		}

		z.Add(z, share.Z)
		z.Mod(z, curveOrder)
	}

	return &Signature{R: groupCommitment, Z: z}, nil
}
