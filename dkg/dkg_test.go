package dkg_test

import (
	"testing"

	"threshold.network/frost-ecgfp5/dkg"
	"threshold.network/frost-ecgfp5/frost"
	"threshold.network/frost-ecgfp5/frost/ecgfp5"
	"threshold.network/frost-ecgfp5/internal/testutils"
)

func TestDealerFreeKeyGeneration(t *testing.T) {
	ciphersuite := ecgfp5.New()
	groupSize, threshold := 4, 3
	identifiers := []frost.Identifier{1, 2, 3, 4}

	participants := make(map[frost.Identifier]*dkg.Participant, groupSize)
	for _, id := range identifiers {
		p, err := dkg.NewParticipant(ciphersuite, id, threshold, groupSize)
		if err != nil {
			t.Fatal(err)
		}
		participants[id] = p
	}

	round1Broadcasts := make([]*dkg.Round1Broadcast, 0, groupSize)
	for _, id := range identifiers {
		b, err := participants[id].Round1()
		if err != nil {
			t.Fatal(err)
		}
		round1Broadcasts = append(round1Broadcasts, b)
	}

	round2Broadcasts := make([]*dkg.Round2Broadcast, 0, groupSize)
	allP2Ps := make([]*dkg.Round2P2P, 0, groupSize*(groupSize-1))
	for _, id := range identifiers {
		broadcast, p2ps, err := participants[id].Round2(round1Broadcasts, identifiers)
		if err != nil {
			t.Fatal(err)
		}
		round2Broadcasts = append(round2Broadcasts, broadcast)
		allP2Ps = append(allP2Ps, p2ps...)
	}

	var groupPublicKey *frost.Point
	keyPackages := make(map[frost.Identifier]*frost.Point)

	for _, id := range identifiers {
		keyPackage, publicKeyPackage, err := participants[id].Round3(round2Broadcasts, allP2Ps, identifiers)
		if err != nil {
			t.Fatal(err)
		}

		if groupPublicKey == nil {
			groupPublicKey = publicKeyPackage.VerifyingKey
		} else if groupPublicKey.X.Cmp(publicKeyPackage.VerifyingKey.X) != 0 {
			t.Fatalf("participant [%d] disagrees on the group public key", id)
		}

		keyPackages[id] = ciphersuite.Curve().EcBaseMul(keyPackage.SigningShare.Value)
	}

	testutils.AssertIntsEqual(t, "number of key packages", groupSize, len(keyPackages))
}

func TestRound2_RecordsInactiveParticipant(t *testing.T) {
	ciphersuite := ecgfp5.New()
	groupSize, threshold := 4, 3
	identifiers := []frost.Identifier{1, 2, 3, 4}

	p, err := dkg.NewParticipant(ciphersuite, frost.Identifier(1), threshold, groupSize)
	if err != nil {
		t.Fatal(err)
	}

	participants := []*dkg.Participant{p}
	for _, id := range []frost.Identifier{2, 3} {
		q, err := dkg.NewParticipant(ciphersuite, id, threshold, groupSize)
		if err != nil {
			t.Fatal(err)
		}
		participants = append(participants, q)
	}

	round1Broadcasts := make([]*dkg.Round1Broadcast, 0, len(participants))
	for _, q := range participants {
		b, err := q.Round1()
		if err != nil {
			t.Fatal(err)
		}
		round1Broadcasts = append(round1Broadcasts, b)
	}

	// Participant 4 never shows up with a round one broadcast.
	if _, _, err := p.Round2(round1Broadcasts, identifiers); err != nil {
		t.Fatal(err)
	}

	inactive := p.InactiveParticipants()
	testutils.AssertIntsEqual(t, "number of inactive participants", 1, len(inactive))
	if inactive[0] != frost.Identifier(4) {
		t.Fatalf("expected participant [4] to be recorded inactive, got [%d]", inactive[0])
	}
}
