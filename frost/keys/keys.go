// Package keys implements the trusted-dealer key generation path of
// [FROST]: generate_with_dealer, split, and reconstruct, together with the
// Feldman VSS commitment that lets a participant verify the share the
// dealer handed it without trusting the dealer.
//
// Polynomial sampling is grounded on the teacher's
// internal/testutils.GenerateKeyShares helper, generalized from a single
// hardcoded secp256k1 order to any Ciphersuite's Curve().Order(); the VSS
// verification equation is grounded on the Feldman check in
// frost/dkg.go's Round2ReceiveShare from the f3rmion-fy example (share*G ==
// sum(commitment[k] * id^k)).
package keys

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"threshold.network/frost-ecgfp5/frost"
)

// SigningShare is a participant's share s_i of the group secret signing key.
type SigningShare struct {
	Value *big.Int
}

// VerifyingShare is the public commitment Y_i = s_i * G corresponding to a
// SigningShare, used by a coordinator or fellow signer to verify signature
// shares.
type VerifyingShare struct {
	Value *frost.Point
}

// VerifiableSecretSharingCommitment is the dealer's Feldman VSS commitment
// to the secret-sharing polynomial: [A_0, ..., A_{t-1}], where A_0 is the
// group's public verifying key and A_k = coefficient_k * G.
type VerifiableSecretSharingCommitment struct {
	Coefficients []*frost.Point
}

// VerifyingKey returns the constant term of the committed polynomial, the
// group's public key.
func (c *VerifiableSecretSharingCommitment) VerifyingKey() *frost.Point {
	return c.Coefficients[0]
}

// SecretShare is one dealer-issued share together with the commitment a
// recipient needs to verify it came from the same polynomial as every other
// share.
type SecretShare struct {
	Identifier   frost.Identifier
	SigningShare *SigningShare
	Commitment   *VerifiableSecretSharingCommitment
}

// KeyPackage bundles everything a Signer needs to participate: its own
// signing share, its own verifying share, and the group's public key.
type KeyPackage struct {
	Identifier     frost.Identifier
	SigningShare   *SigningShare
	VerifyingShare *VerifyingShare
	VerifyingKey   *frost.Point
	Threshold      int
}

// PublicKeyPackage is the information every participant and the coordinator
// can safely hold in public: the group's verifying key and every
// participant's individual verifying share.
type PublicKeyPackage struct {
	VerifyingKey    *frost.Point
	VerifyingShares map[frost.Identifier]*VerifyingShare
}

// GenerateWithDealer implements keys::generate_with_dealer from
// [original_source]: a trusted dealer samples a fresh group secret key and
// splits it into groupSize shares, threshold of which are required to sign.
// identifiers, when non-nil, supplies the n distinct identifiers to issue
// shares for instead of the default 1..=n; it must have exactly groupSize
// entries.
func GenerateWithDealer(
	ciphersuite frost.Ciphersuite,
	groupSize, threshold int,
	identifiers []frost.Identifier,
	rnd io.Reader,
) (map[frost.Identifier]*SecretShare, *PublicKeyPackage, error) {
	order := ciphersuite.Curve().Order()

	secret, err := randomScalar(rnd, order)
	if err != nil {
		return nil, nil, fmt.Errorf("secret key generation failed: %w", err)
	}
	defer secret.SetInt64(0)

	if identifiers == nil {
		identifiers = make([]frost.Identifier, groupSize)
		for i := range identifiers {
			identifiers[i] = frost.Identifier(i + 1)
		}
	} else if len(identifiers) != groupSize {
		return nil, nil, fmt.Errorf(
			"expected [%d] identifiers for group size [%d], got [%d]",
			groupSize, groupSize, len(identifiers),
		)
	}

	shares, commitment, err := split(ciphersuite, secret, threshold, identifiers, rnd)
	if err != nil {
		return nil, nil, err
	}

	return shares, publicKeyPackage(ciphersuite, shares, commitment), nil
}

// Split implements keys::split from [original_source]: given an existing
// secret (e.g. one generated out of band, or being re-split after a
// membership change), produce dealer shares for the given set of
// identifiers without requiring they be a contiguous 1..n range.
func Split(
	ciphersuite frost.Ciphersuite,
	secret *big.Int,
	threshold int,
	identifiers []frost.Identifier,
	rnd io.Reader,
) (map[frost.Identifier]*SecretShare, *PublicKeyPackage, error) {
	shares, commitment, err := split(ciphersuite, secret, threshold, identifiers, rnd)
	if err != nil {
		return nil, nil, err
	}
	return shares, publicKeyPackage(ciphersuite, shares, commitment), nil
}

func split(
	ciphersuite frost.Ciphersuite,
	secret *big.Int,
	threshold int,
	identifiers []frost.Identifier,
	rnd io.Reader,
) (map[frost.Identifier]*SecretShare, *VerifiableSecretSharingCommitment, error) {
	if threshold < 1 || threshold > len(identifiers) {
		return nil, nil, fmt.Errorf(
			"invalid threshold [%d] for [%d] participants", threshold, len(identifiers),
		)
	}
	seen := make(map[frost.Identifier]bool, len(identifiers))
	for _, id := range identifiers {
		if err := id.Validate(); err != nil {
			return nil, nil, err
		}
		if seen[id] {
			return nil, nil, fmt.Errorf("%w: [%d]", frost.ErrDuplicateIdentifier, id)
		}
		seen[id] = true
	}

	curve := ciphersuite.Curve()
	order := curve.Order()

	coefficients, err := generatePolynomial(secret, threshold, order, rnd)
	if err != nil {
		return nil, nil, err
	}

	commitmentPoints := make([]*frost.Point, threshold)
	for i, c := range coefficients {
		commitmentPoints[i] = curve.EcBaseMul(c)
	}
	commitment := &VerifiableSecretSharingCommitment{Coefficients: commitmentPoints}

	shares := make(map[frost.Identifier]*SecretShare, len(identifiers))
	for _, id := range identifiers {
		value := evaluatePolynomial(coefficients, big.NewInt(int64(id)), order)
		shares[id] = &SecretShare{
			Identifier:   id,
			SigningShare: &SigningShare{Value: value},
			Commitment:   commitment,
		}
	}

	return shares, commitment, nil
}

func publicKeyPackage(
	ciphersuite frost.Ciphersuite,
	shares map[frost.Identifier]*SecretShare,
	commitment *VerifiableSecretSharingCommitment,
) *PublicKeyPackage {
	curve := ciphersuite.Curve()
	verifyingShares := make(map[frost.Identifier]*VerifyingShare, len(shares))
	for id, share := range shares {
		verifyingShares[id] = &VerifyingShare{Value: curve.EcBaseMul(share.SigningShare.Value)}
	}
	return &PublicKeyPackage{
		VerifyingKey:    commitment.VerifyingKey(),
		VerifyingShares: verifyingShares,
	}
}

// VerifySecretShare checks a SecretShare against its VerifiableSecretSharingCommitment
// using the Feldman VSS equation: s_i * G == sum_k(commitment[k] * i^k). A
// share that fails this check did not come from the same polynomial as the
// rest of the group and must be rejected rather than used for signing.
func VerifySecretShare(ciphersuite frost.Ciphersuite, share *SecretShare) error {
	curve := ciphersuite.Curve()

	lhs := curve.EcBaseMul(share.SigningShare.Value)

	rhs := curve.Identity()
	idPower := big.NewInt(1)
	id := big.NewInt(int64(share.Identifier))
	for _, coeff := range share.Commitment.Coefficients {
		term := curve.EcMul(coeff, idPower)
		rhs = curve.EcAdd(rhs, term)
		idPower = new(big.Int).Mul(idPower, id)
	}

	if lhs.X.Cmp(rhs.X) != 0 || lhs.Y.Cmp(rhs.Y) != 0 {
		return fmt.Errorf("%w: for participant [%d]", frost.ErrInvalidSecretShare, share.Identifier)
	}

	return nil
}

// IntoKeyPackage converts a verified SecretShare into the KeyPackage a
// Signer is constructed from. Callers should call VerifySecretShare first.
func (s *SecretShare) IntoKeyPackage(ciphersuite frost.Ciphersuite, threshold int) *KeyPackage {
	curve := ciphersuite.Curve()
	return &KeyPackage{
		Identifier:     s.Identifier,
		SigningShare:   s.SigningShare,
		VerifyingShare: &VerifyingShare{Value: curve.EcBaseMul(s.SigningShare.Value)},
		VerifyingKey:   s.Commitment.VerifyingKey(),
		Threshold:      threshold,
	}
}

// Reconstruct implements keys::reconstruct from [original_source]: it
// recovers the group secret key from at least threshold shares via
// Lagrange interpolation at x=0. This defeats the purpose of threshold
// signing if used carelessly and exists for migration/backup scenarios
// only; re-randomized signing and key-repair/refresh are non-goals this
// function does not attempt to replace.
func Reconstruct(ciphersuite frost.Ciphersuite, shares []*SecretShare) (*big.Int, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("no shares provided")
	}

	order := ciphersuite.Curve().Order()

	ids := make([]*big.Int, len(shares))
	seen := make(map[frost.Identifier]bool, len(shares))
	for i, share := range shares {
		if seen[share.Identifier] {
			return nil, fmt.Errorf("%w: [%d]", frost.ErrDuplicateIdentifier, share.Identifier)
		}
		seen[share.Identifier] = true
		ids[i] = big.NewInt(int64(share.Identifier))
	}

	secret := big.NewInt(0)
	for i, share := range shares {
		lambda := lagrangeCoefficientAtZero(ids, i, order)
		term := new(big.Int).Mul(share.SigningShare.Value, lambda)
		secret.Add(secret, term)
		secret.Mod(secret, order)
	}

	return secret, nil
}

// lagrangeCoefficientAtZero computes the Lagrange basis polynomial for
// ids[i] evaluated at x=0, i.e. the weight ids[i]'s share contributes when
// interpolating the polynomial's constant term.
func lagrangeCoefficientAtZero(ids []*big.Int, i int, order *big.Int) *big.Int {
	num := big.NewInt(1)
	den := big.NewInt(1)
	xi := ids[i]

	for j, xj := range ids {
		if j == i {
			continue
		}
		// num *= (0 - xj) = -xj
		num.Mul(num, new(big.Int).Neg(xj))
		num.Mod(num, order)
		// den *= (xi - xj)
		den.Mul(den, new(big.Int).Sub(xi, xj))
		den.Mod(den, order)
	}

	denInv := new(big.Int).ModInverse(den, order)
	result := new(big.Int).Mul(num, denInv)
	return result.Mod(result, order)
}

// generatePolynomial samples a degree threshold-1 polynomial with secret as
// its constant term and threshold-1 random coefficients below order,
// mirroring internal/testutils.generatePolynomial but bound to a
// ciphersuite's own group order rather than a hardcoded one.
func generatePolynomial(secret *big.Int, threshold int, order *big.Int, rnd io.Reader) ([]*big.Int, error) {
	coefficients := make([]*big.Int, threshold)
	coefficients[0] = secret
	for i := 1; i < threshold; i++ {
		c, err := randomScalar(rnd, order)
		if err != nil {
			return nil, err
		}
		coefficients[i] = c
	}
	return coefficients, nil
}

// evaluatePolynomial evaluates the polynomial named by coefficients at x,
// modulo order, using Horner's method.
func evaluatePolynomial(coefficients []*big.Int, x *big.Int, order *big.Int) *big.Int {
	result := big.NewInt(0)
	for i := len(coefficients) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, coefficients[i])
		result.Mod(result, order)
	}
	return result
}

func randomScalar(rnd io.Reader, order *big.Int) (*big.Int, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	return rand.Int(rnd, order)
}
