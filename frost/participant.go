package frost

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Participant implements the base functionality shared by every [FROST]
// protocol role: Signer and Coordinator both embed Participant and inherit
// the binding-factor, group-commitment, and challenge computation it
// provides, so that the two roles can never disagree about how those
// values are derived.
type Participant struct {
	ciphersuite Ciphersuite

	publicKey *Point // group_public_key in [FROST]
}

// PublicKeyPackage carries the public information a Coordinator needs to
// verify individual signature shares during aggregation: the group's
// verifying key Y and every participant's own verifying share Y_i = s_i·B.
// It mirrors keys.PublicKeyPackage's fields in terms this package can use
// without importing package keys, which itself imports this package.
type PublicKeyPackage struct {
	VerifyingKey    *Point
	VerifyingShares map[Identifier]*Point
}

// NonceCommitment is a message produced in Round One of [FROST].
type NonceCommitment struct {
	Identifier             Identifier
	hidingNonceCommitment  *Point
	bindingNonceCommitment *Point
}

// validateCommitments checks a commitment_list against every structural
// invariant [FROST] imposes on it: ascending sort order by identifier, no
// nil entries, no duplicate identifiers, and every commitment Element lying
// on the curve and not equal to the identity. When self is non-nil, it
// additionally requires that identifier's commitment be present, as Round 2
// requires of a signer validating its own input. It implements
// participants_from_commitment_list from [FROST] section 4.3, returning the
// sorted list of participant identifiers when validation succeeds.
func (p *Participant) validateCommitments(
	commitments []*NonceCommitment,
	self *Identifier,
) ([]error, []Identifier) {
	var errs []error

	curve := p.ciphersuite.Curve()

	ids := make([]Identifier, 0, len(commitments))
	seen := make(map[Identifier]bool, len(commitments))
	found := self == nil

	for i, c := range commitments {
		if c == nil {
			errs = append(errs, fmt.Errorf("commitment at position [%d] is nil", i))
			continue
		}

		if err := c.Identifier.Validate(); err != nil {
			errs = append(errs, fmt.Errorf(
				"commitment at position [%d]: %w", i, err,
			))
			continue
		}

		if seen[c.Identifier] {
			errs = append(errs, fmt.Errorf(
				"%w: [%d]", ErrDuplicateIdentifier, c.Identifier,
			))
			continue
		}
		seen[c.Identifier] = true
		ids = append(ids, c.Identifier)

		if self != nil && c.Identifier == *self {
			found = true
		}

		if !curve.IsPointOnCurve(c.bindingNonceCommitment) {
			errs = append(errs, fmt.Errorf(
				"%w: binding nonce commitment from participant [%d]",
				ErrIdentityCommitment, c.Identifier,
			))
		}

		if !curve.IsPointOnCurve(c.hidingNonceCommitment) {
			errs = append(errs, fmt.Errorf(
				"%w: hiding nonce commitment from participant [%d]",
				ErrIdentityCommitment, c.Identifier,
			))
		}
	}

	if !sortedAscending(ids) {
		errs = append(errs, fmt.Errorf(
			"commitment_list is not sorted in ascending order by identifier",
		))
	}

	if !found {
		errs = append(errs, fmt.Errorf(
			"%w: current signer's commitment not found on the list",
			ErrMissingCommitment,
		))
	}

	if len(errs) != 0 {
		return errs, nil
	}

	return nil, ids
}

// computeBindingFactor implements def compute_binding_factor(commitment_list,
// msg) from [FROST], as defined in section 4.4. Binding Factor Computation.
// ρ is a single value for the whole signing session, a function only of
// commitment_list and msg: every participant and the coordinator recompute
// the same ρ independently, binding every share to this specific set of
// signers, commitments, and message.
//
// The caller must first validate commitments with validateCommitments.
func (p *Participant) computeBindingFactor(
	message []byte,
	commitments []*NonceCommitment,
) *big.Int {
	groupCommitmentEncoded := p.encodeGroupCommitment(commitments)
	msgHash := p.ciphersuite.H5(message)

	rhoInput := concat(groupCommitmentEncoded, msgHash)

	return p.ciphersuite.H1(rhoInput)
}

// computeGroupCommitment implements def compute_group_commitment(commitment_list,
// binding_factor) function from [FROST], as defined in section 4.6. Group
// Commitment Computation.
//
// The caller must first validate commitments with validateCommitments.
func (p *Participant) computeGroupCommitment(
	commitments []*NonceCommitment,
	bindingFactor *big.Int,
) *Point {
	curve := p.ciphersuite.Curve()

	groupCommitment := curve.Identity()

	for _, commitment := range commitments {
		bindingNonce := curve.EcMul(
			commitment.bindingNonceCommitment,
			bindingFactor,
		)
		groupCommitment = curve.EcAdd(
			groupCommitment,
			curve.EcAdd(commitment.hidingNonceCommitment, bindingNonce),
		)
	}

	return groupCommitment
}

// encodeGroupCommitment implements def encode_group_commitment_list(commitment_list)
// function from [FROST], as defined in section 4.3. List Operations.
//
// The caller must first validate commitments with validateCommitments.
func (p *Participant) encodeGroupCommitment(
	commitments []*NonceCommitment,
) []byte {
	curve := p.ciphersuite.Curve()
	ecPointLength := curve.SerializedPointLength()

	b := make([]byte, 0, (8+2*ecPointLength)*len(commitments))

	for _, c := range commitments {
		b = binary.BigEndian.AppendUint64(b, uint64(c.Identifier))
		b = append(b, curve.SerializePoint(c.hidingNonceCommitment)...)
		b = append(b, curve.SerializePoint(c.bindingNonceCommitment)...)
	}

	return b
}

// deriveInterpolatingValue implements def derive_interpolating_value(L, x_i)
// function from [FROST], as defined in section 4.2 Polynomials.
//
// The caller must first validate commitments with validateCommitments, which
// guarantees xi appears exactly once in L.
func (p *Participant) deriveInterpolatingValue(xi Identifier, L []Identifier) *big.Int {
	order := p.ciphersuite.Curve().Order()

	num := big.NewInt(1)
	den := big.NewInt(1)
	for _, xj := range L {
		if xj == xi {
			continue
		}
		num.Mul(num, big.NewInt(int64(xj)))
		num.Mod(num, order)
		den.Mul(den, big.NewInt(int64(xj)-int64(xi)))
		den.Mod(den, order)
	}

	denInv := new(big.Int).ModInverse(den, order)
	res := new(big.Int).Mul(num, denInv)
	res = res.Mod(res, order)

	return res
}

// verifySignatureShare checks the per-participant equation [FROST] section
// 4.9 requires during aggregation: z_i·B == R_i + c·λ_i·Y_i, where
// R_i = D_i + ρ·E_i. Both Signer.VerifyShare and Coordinator.Aggregate call
// this against the ρ, c, and λ_i they compute once for the whole signer
// set, rather than each recomputing the check independently.
func (p *Participant) verifySignatureShare(
	commitment *NonceCommitment,
	share *SignatureShare,
	bindingFactor *big.Int,
	challenge *big.Int,
	lambda *big.Int,
	verifyingShare *Point,
) error {
	curve := p.ciphersuite.Curve()

	expected := curve.EcAdd(
		commitment.hidingNonceCommitment,
		curve.EcAdd(
			curve.EcMul(commitment.bindingNonceCommitment, bindingFactor),
			curve.EcMul(verifyingShare, new(big.Int).Mul(challenge, lambda)),
		),
	)
	actual := curve.EcBaseMul(share.Z)

	if actual.X.Cmp(expected.X) != 0 || actual.Y.Cmp(expected.Y) != 0 {
		return fmt.Errorf("%w: from participant [%d]", ErrInvalidSignatureShare, share.Identifier)
	}
	return nil
}

// computeChallenge implements def compute_challenge(group_commitment,
// group_public_key, msg) from [FROST] as defined in section 4.6. Signature
// Challenge Computation. A ciphersuite that provides its own EncodePoint
// (as frost/bip340 does, for BIP-340's x-only challenge) has R and the group
// public key encoded with it; any other ciphersuite has them encoded with
// SerializePoint.
func (p *Participant) computeChallenge(
	message []byte,
	groupCommitment *Point,
) *big.Int {
	if encoder, ok := p.ciphersuite.(interface{ EncodePoint(*Point) []byte }); ok {
		return p.ciphersuite.H2(encoder.EncodePoint(groupCommitment), encoder.EncodePoint(p.publicKey), message)
	}

	curve := p.ciphersuite.Curve()
	groupCommitmentEncoded := curve.SerializePoint(groupCommitment)
	publicKeyEncoded := curve.SerializePoint(p.publicKey)
	return p.ciphersuite.H2(groupCommitmentEncoded, publicKeyEncoded, message)
}
