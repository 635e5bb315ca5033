package bip340_test

import (
	"crypto/rand"
	"testing"

	"threshold.network/frost-ecgfp5/frost"
	"threshold.network/frost-ecgfp5/frost/bip340"
	"threshold.network/frost-ecgfp5/internal/testutils"
)

func TestSingleSignerRoundtrip(t *testing.T) {
	cs := bip340.New()
	curve := cs.Curve()
	order := curve.Order()

	secretKey, err := rand.Int(rand.Reader, order)
	if err != nil {
		t.Fatal(err)
	}

	publicKey := curve.EcBaseMul(secretKey)
	if publicKey.Y.Bit(0) != 0 {
		secretKey.Sub(order, secretKey)
		publicKey = curve.EcBaseMul(secretKey)
	}

	signer, err := frost.NewSigner(cs, frost.Identifier(1), secretKey, publicKey)
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("a lone signer still runs the full FROST round")
	nonce, commitment, err := signer.Round1()
	if err != nil {
		t.Fatal(err)
	}

	share, err := signer.Round2(message, nonce, []*frost.NonceCommitment{commitment})
	if err != nil {
		t.Fatal(err)
	}

	coordinator := frost.NewCoordinator(cs, publicKey, 1, 1)
	publicKeyPackage := &frost.PublicKeyPackage{
		VerifyingKey:    publicKey,
		VerifyingShares: map[frost.Identifier]*frost.Point{1: publicKey},
	}
	signature, err := coordinator.Aggregate(message, []*frost.NonceCommitment{commitment}, []*frost.SignatureShare{share}, publicKeyPackage)
	if err != nil {
		t.Fatal(err)
	}

	valid, err := cs.VerifySignature(signature, publicKey, message)
	if err != nil {
		t.Fatal(err)
	}
	testutils.AssertBoolsEqual(t, "signature validity", true, valid)
}

func TestSerializePointRoundtrip(t *testing.T) {
	cs := bip340.New()
	curve := cs.Curve()

	k, err := rand.Int(rand.Reader, curve.Order())
	if err != nil {
		t.Fatal(err)
	}
	p := curve.EcBaseMul(k)

	encoded := curve.SerializePoint(p)
	testutils.AssertIntsEqual(t, "encoded length", curve.SerializedPointLength(), len(encoded))

	decoded := curve.DeserializePoint(encoded)
	if decoded == nil {
		t.Fatal("expected decode to succeed")
	}
	testutils.AssertBigIntsEqual(t, "decoded X", p.X, decoded.X)
	testutils.AssertBigIntsEqual(t, "decoded Y", p.Y, decoded.Y)
}
