package ecgfp5

import (
	"bytes"
	"testing"

	"threshold.network/frost-ecgfp5/internal/testutils"
)

func TestHashToScalarIsDeterministic(t *testing.T) {
	cs := New()
	msg := []byte("For even the very wise cannot see all ends")

	a := cs.H1(msg)
	b := cs.H1(msg)
	testutils.AssertBigIntsEqual(t, "H1 determinism", a, b)
}

func TestHashesAreDomainSeparated(t *testing.T) {
	cs := New()
	msg := []byte("same input, different tag")

	h1 := cs.H1(msg)
	h3 := cs.H3(msg)
	if h1.Cmp(h3) == 0 {
		t.Fatal("expected H1 and H3 to diverge under the same input")
	}
}

func TestHashHandlesLongInputAcrossPoseidonBatches(t *testing.T) {
	cs := New()
	// Comfortably larger than maxPoseidonInputs*poseidonInputWidth so the
	// chunk-and-fold path in poseidonSqueeze is exercised.
	long := bytes.Repeat([]byte("frost-ecgfp5-poseidon-folding-test-vector"), 20)

	digest := cs.H4(long)
	testutils.AssertIntsEqual(t, "H4 digest length", 32, len(digest))

	digestAgain := cs.H4(long)
	testutils.AssertBytesEqual(t, digest, digestAgain)
}

func TestHIDRejectsNothingForRandomInput(t *testing.T) {
	cs := New()
	id, err := cs.HID([]byte("participant-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutils.AssertBigIntNonZero(t, "derived identifier", id)
}
