package frost_test

import (
	"errors"
	"slices"
	"testing"

	"threshold.network/frost-ecgfp5/frost"
)

// TestRound2_MissingOwnCommitment covers the validation path Round2 runs
// before ever computing a binding factor: a signer whose own commitment is
// absent from the list must fail rather than sign blind.
func TestRound2_MissingOwnCommitment(t *testing.T) {
	signers, _, _ := createSigners(t)
	nonces, commitments := executeRound1(t, signers)

	signer := signers[1]
	withoutOwnCommitment := slices.Delete(slices.Clone(commitments), 1, 2)

	_, err := signer.Round2([]byte("dummy"), nonces[1], withoutOwnCommitment)
	if err == nil {
		t.Fatal("expected a non-nil error")
	}
}

// TestRound2_DuplicateCommitment covers Round2 rejecting a commitment list
// naming the same signer twice.
func TestRound2_DuplicateCommitment(t *testing.T) {
	signers, _, _ := createSigners(t)
	nonces, commitments := executeRound1(t, signers)

	duplicated := slices.Clone(commitments)
	duplicated[2] = duplicated[1]

	_, err := signers[1].Round2([]byte("dummy"), nonces[1], duplicated)
	if err == nil {
		t.Fatal("expected a non-nil error")
	}
}

// TestVerifyShare checks that every signature share a signer produces
// verifies against that signer's own verifying share Y_i = sk_i * G, the
// check a coordinator would run to identify a misbehaving signer.
func TestVerifyShare(t *testing.T) {
	message := []byte("For even the very wise cannot see all ends")
	signers, _, keyShares := createSigners(t)

	nonces, commitments := executeRound1(t, signers)
	shares := executeRound2(t, signers, message, nonces, commitments)

	curve := ciphersuite.Curve()
	for i, signer := range signers[:3] {
		verifyingShare := curve.EcBaseMul(keyShares[i])
		if err := signer.VerifyShare(message, shares[i], commitments, verifyingShare); err != nil {
			t.Fatalf("share from signer [%d] failed verification: %v", i, err)
		}
	}
}

// TestVerifyShare_WrongVerifyingShare checks that VerifyShare rejects a
// share checked against a verifying share it does not belong to.
func TestVerifyShare_WrongVerifyingShare(t *testing.T) {
	message := []byte("For even the very wise cannot see all ends")
	signers, _, keyShares := createSigners(t)

	nonces, commitments := executeRound1(t, signers)
	shares := executeRound2(t, signers, message, nonces, commitments)

	curve := ciphersuite.Curve()
	wrongVerifyingShare := curve.EcBaseMul(keyShares[1])

	err := signers[0].VerifyShare(message, shares[0], commitments, wrongVerifyingShare)
	if !errors.Is(err, frost.ErrInvalidSignatureShare) {
		t.Fatalf("expected ErrInvalidSignatureShare, got: %v", err)
	}
}
