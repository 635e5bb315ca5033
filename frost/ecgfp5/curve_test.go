package ecgfp5

import (
	"crypto/rand"
	"math/big"
	"testing"

	"threshold.network/frost-ecgfp5/internal/testutils"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	g := &Point{X: generatorX, Y: generatorY}
	if !isOnCurve(g) {
		t.Fatal("expected generator to be on curve")
	}
}

func TestScalarMultRoundtrip(t *testing.T) {
	k, err := rand.Int(rand.Reader, groupOrder)
	if err != nil {
		t.Fatal(err)
	}

	p := scalarMult(&Point{X: generatorX, Y: generatorY}, k)
	if !isOnCurve(p) {
		t.Fatal("expected k*G to be on curve")
	}

	encoded := serialize(p)
	testutils.AssertIntsEqual(t, "encoded length", encodedLength, len(encoded))

	decoded := deserialize(encoded)
	if decoded == nil {
		t.Fatal("expected decode to succeed")
	}
	testutils.AssertBigIntsEqual(t, "decoded X", p.X, decoded.X)
	testutils.AssertBigIntsEqual(t, "decoded Y", p.Y, decoded.Y)
}

func TestAddMatchesDouble(t *testing.T) {
	g := &Point{X: generatorX, Y: generatorY}
	doubled := double(g)
	added := add(g, g)

	testutils.AssertBigIntsEqual(t, "double vs add X", doubled.X, added.X)
	testutils.AssertBigIntsEqual(t, "double vs add Y", doubled.Y, added.Y)
}

func TestScalarMultDistributesOverAddition(t *testing.T) {
	a, err := rand.Int(rand.Reader, groupOrder)
	if err != nil {
		t.Fatal(err)
	}
	b, err := rand.Int(rand.Reader, groupOrder)
	if err != nil {
		t.Fatal(err)
	}

	g := &Point{X: generatorX, Y: generatorY}
	sum := new(big.Int).Add(a, b)
	lhs := scalarMult(g, sum)
	rhs := add(scalarMult(g, a), scalarMult(g, b))

	testutils.AssertBigIntsEqual(t, "(a+b)*G vs a*G+b*G X", lhs.X, rhs.X)
	testutils.AssertBigIntsEqual(t, "(a+b)*G vs a*G+b*G Y", lhs.Y, rhs.Y)
}

func TestDeserializeRejectsIdentity(t *testing.T) {
	zero := make([]byte, encodedLength)
	if deserialize(zero) != nil {
		t.Fatal("expected the all-zero encoding to be rejected")
	}
}

func TestDeserializeRejectsNonCanonicalPadding(t *testing.T) {
	k, err := rand.Int(rand.Reader, groupOrder)
	if err != nil {
		t.Fatal(err)
	}
	p := scalarMult(&Point{X: generatorX, Y: generatorY}, k)

	encoded := serialize(p)
	if deserialize(encoded) == nil {
		t.Fatal("expected a canonical encoding to decode")
	}

	encoded[39] = 0x01
	if deserialize(encoded) != nil {
		t.Fatal("expected garbage in the padding bytes to be rejected")
	}
}

func TestSerializeIdentity(t *testing.T) {
	encoded := serialize(identity())
	for _, b := range encoded {
		if b != 0 {
			t.Fatal("expected identity to serialize to all zero bytes")
		}
	}
}
