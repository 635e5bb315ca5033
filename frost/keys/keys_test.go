package keys_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"threshold.network/frost-ecgfp5/frost"
	"threshold.network/frost-ecgfp5/frost/ecgfp5"
	"threshold.network/frost-ecgfp5/frost/keys"
	"threshold.network/frost-ecgfp5/internal/testutils"
)

func TestGenerateWithDealer_SharesVerify(t *testing.T) {
	ciphersuite := ecgfp5.New()

	shares, publicKeyPackage, err := keys.GenerateWithDealer(ciphersuite, 5, 3, nil, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	testutils.AssertIntsEqual(t, "number of shares", 5, len(shares))

	for id, share := range shares {
		if err := keys.VerifySecretShare(ciphersuite, share); err != nil {
			t.Fatalf("share for participant [%d] failed verification: %v", id, err)
		}

		keyPackage := share.IntoKeyPackage(ciphersuite, 3)
		expectedShare, ok := publicKeyPackage.VerifyingShares[id]
		if !ok {
			t.Fatalf("no verifying share published for participant [%d]", id)
		}
		if keyPackage.VerifyingShare.Value.X.Cmp(expectedShare.Value.X) != 0 {
			t.Fatalf("verifying share mismatch for participant [%d]", id)
		}
	}
}

func TestGenerateWithDealer_CustomIdentifiers(t *testing.T) {
	ciphersuite := ecgfp5.New()

	custom := []frost.Identifier{10, 20, 30}
	shares, publicKeyPackage, err := keys.GenerateWithDealer(ciphersuite, 3, 2, custom, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	testutils.AssertIntsEqual(t, "number of shares", 3, len(shares))

	for _, id := range custom {
		share, ok := shares[id]
		if !ok {
			t.Fatalf("no share issued for requested identifier [%d]", id)
		}
		if err := keys.VerifySecretShare(ciphersuite, share); err != nil {
			t.Fatalf("share for participant [%d] failed verification: %v", id, err)
		}
		if _, ok := publicKeyPackage.VerifyingShares[id]; !ok {
			t.Fatalf("no verifying share published for requested identifier [%d]", id)
		}
	}
}

func TestReconstructRecoversSecret(t *testing.T) {
	ciphersuite := ecgfp5.New()
	order := ciphersuite.Curve().Order()

	secret, err := rand.Int(rand.Reader, order)
	if err != nil {
		t.Fatal(err)
	}

	identifiers := []frost.Identifier{1, 2, 3, 4, 5}
	shares, _, err := keys.Split(ciphersuite, secret, 3, identifiers, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	subset := []*keys.SecretShare{shares[1], shares[3], shares[5]}
	reconstructed, err := keys.Reconstruct(ciphersuite, subset)
	if err != nil {
		t.Fatal(err)
	}

	testutils.AssertBigIntsEqual(t, "reconstructed secret", secret, reconstructed)
}

func TestVerifySecretShare_RejectsTamperedShare(t *testing.T) {
	ciphersuite := ecgfp5.New()

	shares, _, err := keys.GenerateWithDealer(ciphersuite, 3, 2, nil, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	var share *keys.SecretShare
	for _, s := range shares {
		share = s
		break
	}

	tampered := &keys.SecretShare{
		Identifier:   share.Identifier,
		SigningShare: &keys.SigningShare{Value: new(big.Int).Add(share.SigningShare.Value, big.NewInt(1))},
		Commitment:   share.Commitment,
	}

	if err := keys.VerifySecretShare(ciphersuite, tampered); err == nil {
		t.Fatal("expected tampered share to fail verification")
	}
}
