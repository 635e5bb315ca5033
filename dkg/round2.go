package dkg

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"threshold.network/frost-ecgfp5/frost"
	"threshold.network/frost-ecgfp5/frost/keys"
)

// Round2Broadcast is the Feldman VSS commitment a participant publishes to
// the whole group, binding it to the secret-sharing polynomial it sampled
// in round two.
type Round2Broadcast struct {
	Identifier frost.Identifier
	Commitment *keys.VerifiableSecretSharingCommitment
}

// Round2P2P is one encrypted share, addressed from a single sender to a
// single recipient. It must be delivered over an out-of-band channel keyed
// by Recipient; only the Recipient can decrypt EncryptedShare, since it is
// sealed with the pairwise symmetric key derived from both parties'
// ephemeral keys.
type Round2P2P struct {
	Sender         frost.Identifier
	Recipient      frost.Identifier
	EncryptedShare []byte
}

// Round2 derives a pairwise symmetric channel with every other participant
// from its round one broadcast, samples a fresh degree-(threshold-1)
// polynomial with a random constant term, and returns the public
// commitment to broadcast together with one encrypted share per recipient.
// identifiers is the full expected group; any member absent from
// round1Broadcasts is recorded as inactive and retrievable afterwards
// through InactiveParticipants, rather than aborting the run outright.
func (p *Participant) Round2(
	round1Broadcasts []*Round1Broadcast,
	identifiers []frost.Identifier,
) (*Round2Broadcast, []*Round2P2P, error) {
	p.group = newGroup(identifiers)
	present := make([]frost.Identifier, 0, len(round1Broadcasts))
	for _, b := range round1Broadcasts {
		present = append(present, b.Identifier)
	}
	for _, inactive := range findInactive(identifiers, present) {
		p.group.markInactive(inactive)
	}

	order := p.ciphersuite.Curve().Order()

	secret, err := rand.Int(rand.Reader, order)
	if err != nil {
		return nil, nil, fmt.Errorf("polynomial secret generation failed: %w", err)
	}

	coefficients := make([]*big.Int, p.threshold)
	coefficients[0] = secret
	for i := 1; i < p.threshold; i++ {
		c, err := rand.Int(rand.Reader, order)
		if err != nil {
			return nil, nil, fmt.Errorf("polynomial coefficient generation failed: %w", err)
		}
		coefficients[i] = c
	}
	p.coefficients = coefficients

	curve := p.ciphersuite.Curve()
	commitmentPoints := make([]*frost.Point, p.threshold)
	for i, c := range coefficients {
		commitmentPoints[i] = curve.EcBaseMul(c)
	}
	p.commitment = &keys.VerifiableSecretSharingCommitment{Coefficients: commitmentPoints}

	p2ps := make([]*Round2P2P, 0, len(round1Broadcasts)-1)
	for _, broadcast := range round1Broadcasts {
		if broadcast.Identifier == p.identifier {
			continue
		}

		symmetricKey := p.ephemeralKeyPair.PrivateKey.Ecdh(broadcast.EphemeralPublicKey)
		p.symmetricKeys[broadcast.Identifier] = symmetricKey

		share := evaluatePolynomial(coefficients, big.NewInt(int64(broadcast.Identifier)), order)

		encrypted, err := symmetricKey.Encrypt(share.Bytes())
		if err != nil {
			return nil, nil, fmt.Errorf(
				"share encryption for participant [%d] failed: %w", broadcast.Identifier, err,
			)
		}

		p2ps = append(p2ps, &Round2P2P{
			Sender:         p.identifier,
			Recipient:      broadcast.Identifier,
			EncryptedShare: encrypted,
		})
	}

	return &Round2Broadcast{Identifier: p.identifier, Commitment: p.commitment}, p2ps, nil
}

func evaluatePolynomial(coefficients []*big.Int, x *big.Int, order *big.Int) *big.Int {
	result := big.NewInt(0)
	for i := len(coefficients) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, coefficients[i])
		result.Mod(result, order)
	}
	return result
}
