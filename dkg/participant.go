// Package dkg implements dealer-free distributed key generation for
// [FROST]: a group of participants jointly produces signing shares and a
// group verifying key without any single party ever holding the full
// secret key, generalizing the three-phase structure of the teacher's
// gjkr package (ephemeral key exchange, then Feldman-committed polynomial
// shares, then share verification and combination) from a hardcoded
// secp256k1/uint16-index GJKR run to any frost.Ciphersuite and
// frost.Identifier.
package dkg

import (
	"fmt"
	"math/big"

	"threshold.network/frost-ecgfp5/ephemeral"
	"threshold.network/frost-ecgfp5/frost"
	"threshold.network/frost-ecgfp5/frost/keys"
)

// Participant carries one member's state across the three rounds of
// dealer-free key generation. A Participant is single-use: create a fresh
// one for every DKG run.
type Participant struct {
	ciphersuite frost.Ciphersuite
	identifier  frost.Identifier
	threshold   int
	groupSize   int

	ephemeralKeyPair *ephemeral.KeyPair
	symmetricKeys    map[frost.Identifier]*ephemeral.SymmetricEcdhKey

	coefficients []*big.Int
	commitment   *keys.VerifiableSecretSharingCommitment

	group *group
}

// InactiveParticipants reports the identifiers of group members whose round
// one broadcast was missing when this Participant ran Round2. A caller
// may use this to exclude them from subsequent rounds rather than aborting
// the whole run.
func (p *Participant) InactiveParticipants() []frost.Identifier {
	if p.group == nil {
		return nil
	}
	return p.group.inactiveIdentifiers
}

// NewParticipant creates a Participant for the given identifier in a group
// of groupSize members requiring threshold signers to sign.
func NewParticipant(
	ciphersuite frost.Ciphersuite,
	identifier frost.Identifier,
	threshold, groupSize int,
) (*Participant, error) {
	if err := identifier.Validate(); err != nil {
		return nil, err
	}
	if threshold < 1 || threshold > groupSize {
		return nil, fmt.Errorf(
			"invalid threshold [%d] for group size [%d]", threshold, groupSize,
		)
	}

	return &Participant{
		ciphersuite:   ciphersuite,
		identifier:    identifier,
		threshold:     threshold,
		groupSize:     groupSize,
		symmetricKeys: make(map[frost.Identifier]*ephemeral.SymmetricEcdhKey),
	}, nil
}
