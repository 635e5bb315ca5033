package ristretto_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"threshold.network/frost-ecgfp5/frost"
	"threshold.network/frost-ecgfp5/frost/ristretto"
	"threshold.network/frost-ecgfp5/internal/testutils"
)

func TestSerializePointRoundtrip(t *testing.T) {
	cs := ristretto.New()
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
}

func TestScalarMultDistributesOverAddition(t *testing.T) {
	cs := ristretto.New()
	curve := cs.Curve()
	order := curve.Order()

	a, err := rand.Int(rand.Reader, order)
	if err != nil {
		t.Fatal(err)
	}
	b, err := rand.Int(rand.Reader, order)
	if err != nil {
		t.Fatal(err)
	}

	sum := new(big.Int).Add(a, b)
	lhs := curve.EcBaseMul(sum)
	rhs := curve.EcAdd(curve.EcBaseMul(a), curve.EcBaseMul(b))

	testutils.AssertBigIntsEqual(t, "(a+b)*G vs a*G+b*G", lhs.X, rhs.X)
}

func TestFrostRoundtripOverRistretto(t *testing.T) {
	cs := ristretto.New()
	curve := cs.Curve()

	secretKey, err := rand.Int(rand.Reader, curve.Order())
	if err != nil {
		t.Fatal(err)
	}
	publicKey := curve.EcBaseMul(secretKey)

	signer, err := frost.NewSigner(cs, frost.Identifier(1), secretKey, publicKey)
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("ristretto255 is a second, bonus FROST ciphersuite")
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

	if signature.Z.Sign() == 0 {
		t.Fatal("expected a non-zero signature scalar")
	}
}
