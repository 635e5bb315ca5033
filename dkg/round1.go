package dkg

import (
	"fmt"

	"threshold.network/frost-ecgfp5/ephemeral"
	"threshold.network/frost-ecgfp5/frost"
)

// Round1Broadcast is the message every participant sends to every other
// participant in round one: its ephemeral ECDH public key, used in round
// two to derive a pairwise symmetric channel for encrypted share
// distribution, mirroring the ephemeralPublicKeyMessage phase of the
// teacher's gjkr protocol.
type Round1Broadcast struct {
	Identifier       frost.Identifier
	EphemeralPublicKey *ephemeral.PublicKey
}

// Round1 generates the participant's ephemeral ECDH key pair and returns the
// broadcast message to send to the rest of the group.
func (p *Participant) Round1() (*Round1Broadcast, error) {
	keyPair, err := ephemeral.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("ephemeral key pair generation failed: %w", err)
	}
	p.ephemeralKeyPair = keyPair

	return &Round1Broadcast{
		Identifier:         p.identifier,
		EphemeralPublicKey: keyPair.PublicKey,
	}, nil
}
