package dkg

import (
	"fmt"
	"math/big"

	"threshold.network/frost-ecgfp5/frost"
	"threshold.network/frost-ecgfp5/frost/keys"
)

// Round3 decrypts and verifies the share sent by every other participant
// against the commitment it broadcast in round two, combines them with the
// participant's own self-evaluated share into its final signing share, and
// derives the group's public key package from every participant's
// commitment. A participant that fails Feldman verification is reported
// rather than silently dropped, so the caller can exclude it and restart
// with the remaining group.
func (p *Participant) Round3(
	round2Broadcasts []*Round2Broadcast,
	received []*Round2P2P,
	identifiers []frost.Identifier,
) (*keys.KeyPackage, *keys.PublicKeyPackage, error) {
	curve := p.ciphersuite.Curve()
	order := curve.Order()

	commitments := make(map[frost.Identifier]*keys.VerifiableSecretSharingCommitment, len(round2Broadcasts))
	for _, b := range round2Broadcasts {
		commitments[b.Identifier] = b.Commitment
	}

	signingShare := big.NewInt(0)

	selfShare := evaluatePolynomial(p.coefficients, big.NewInt(int64(p.identifier)), order)
	signingShare.Add(signingShare, selfShare)

	seen := map[frost.Identifier]bool{p.identifier: true}

	for _, p2p := range received {
		if p2p.Recipient != p.identifier {
			continue
		}
		if seen[p2p.Sender] {
			return nil, nil, fmt.Errorf("%w: from participant [%d]", frost.ErrDuplicateIdentifier, p2p.Sender)
		}
		seen[p2p.Sender] = true

		symmetricKey, ok := p.symmetricKeys[p2p.Sender]
		if !ok {
			return nil, nil, fmt.Errorf("no symmetric channel with participant [%d]", p2p.Sender)
		}

		decrypted, err := symmetricKey.Decrypt(p2p.EncryptedShare)
		if err != nil {
			return nil, nil, fmt.Errorf(
				"share decryption from participant [%d] failed: %w", p2p.Sender, err,
			)
		}
		share := new(big.Int).SetBytes(decrypted)

		senderCommitment, ok := commitments[p2p.Sender]
		if !ok {
			return nil, nil, fmt.Errorf("no commitment broadcast from participant [%d]", p2p.Sender)
		}
		if err := verifyFeldman(curve, order, p.identifier, share, senderCommitment); err != nil {
			return nil, nil, fmt.Errorf("participant [%d]: %w", p2p.Sender, err)
		}

		signingShare.Add(signingShare, share)
		signingShare.Mod(signingShare, order)
	}

	for _, id := range identifiers {
		if !seen[id] {
			return nil, nil, fmt.Errorf("%w: missing share from participant [%d]", frost.ErrMissingCommitment, id)
		}
	}

	groupPublicKey := curve.Identity()
	for _, c := range commitments {
		groupPublicKey = curve.EcAdd(groupPublicKey, c.VerifyingKey())
	}

	verifyingShares := make(map[frost.Identifier]*keys.VerifyingShare, len(identifiers))
	for _, id := range identifiers {
		share := curve.Identity()
		idPower := big.NewInt(1)
		idBig := big.NewInt(int64(id))
		for _, c := range commitments {
			for _, coeff := range c.Coefficients {
				share = curve.EcAdd(share, curve.EcMul(coeff, idPower))
				idPower.Mul(idPower, idBig)
				idPower.Mod(idPower, order)
			}
			idPower = big.NewInt(1)
		}
		verifyingShares[id] = &keys.VerifyingShare{Value: share}
	}

	keyPackage := &keys.KeyPackage{
		Identifier:     p.identifier,
		SigningShare:   &keys.SigningShare{Value: signingShare},
		VerifyingShare: verifyingShares[p.identifier],
		VerifyingKey:   groupPublicKey,
		Threshold:      p.threshold,
	}

	publicKeyPackage := &keys.PublicKeyPackage{
		VerifyingKey:    groupPublicKey,
		VerifyingShares: verifyingShares,
	}

	return keyPackage, publicKeyPackage, nil
}

// verifyFeldman checks share * G == sum_k(commitment[k] * id^k), the same
// equation keys.VerifySecretShare checks for dealer-issued shares, applied
// here per-sender during dealer-free combination.
func verifyFeldman(
	curve frost.Curve,
	order *big.Int,
	id frost.Identifier,
	share *big.Int,
	commitment *keys.VerifiableSecretSharingCommitment,
) error {
	lhs := curve.EcBaseMul(share)

	rhs := curve.Identity()
	idPower := big.NewInt(1)
	idBig := big.NewInt(int64(id))
	for _, coeff := range commitment.Coefficients {
		rhs = curve.EcAdd(rhs, curve.EcMul(coeff, idPower))
		idPower.Mul(idPower, idBig)
		idPower.Mod(idPower, order)
	}

	if lhs.X.Cmp(rhs.X) != 0 || lhs.Y.Cmp(rhs.Y) != 0 {
		return frost.ErrInvalidSecretShare
	}
	return nil
}
