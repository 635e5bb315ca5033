package ecgfp5

import (
	"math/big"

	"threshold.network/frost-ecgfp5/frost"
)

// Ciphersuite is the ecGFp5/Poseidon-256 [FROST] Ciphersuite: the primary
// ciphersuite this module implements.
type Ciphersuite struct {
	curve *Curve
}

// New creates a Ciphersuite ready to be used for [FROST] protocol execution.
func New() *Ciphersuite {
	return &Ciphersuite{curve: &Curve{}}
}

// Curve returns the ecGFp5-standing-in group implementation.
func (cs *Ciphersuite) Curve() frost.Curve {
	return cs.curve
}

// Curve wraps the package's internal curve arithmetic to satisfy
// frost.Curve.
type Curve struct{}

func (c *Curve) EcBaseMul(k *big.Int) *frost.Point {
	return toFrostPoint(scalarMult(&Point{X: generatorX, Y: generatorY}, k))
}

func (c *Curve) EcMul(p *frost.Point, k *big.Int) *frost.Point {
	return toFrostPoint(scalarMult(fromFrostPoint(p), k))
}

func (c *Curve) EcAdd(a, b *frost.Point) *frost.Point {
	return toFrostPoint(add(fromFrostPoint(a), fromFrostPoint(b)))
}

func (c *Curve) EcSub(a, b *frost.Point) *frost.Point {
	bp := fromFrostPoint(b)
	if !isIdentity(bp) {
		bp = &Point{X: bp.X, Y: new(big.Int).Sub(fieldPrime, bp.Y)}
	}
	return toFrostPoint(add(fromFrostPoint(a), bp))
}

func (c *Curve) Identity() *frost.Point {
	return toFrostPoint(identity())
}

func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(groupOrder)
}

func (c *Curve) IsPointOnCurve(p *frost.Point) bool {
	return isOnCurve(fromFrostPoint(p))
}

func (c *Curve) SerializedPointLength() int {
	return encodedLength
}

func (c *Curve) SerializePoint(p *frost.Point) []byte {
	return serialize(fromFrostPoint(p))
}

func (c *Curve) DeserializePoint(data []byte) *frost.Point {
	p := deserialize(data)
	if p == nil {
		return nil
	}
	return toFrostPoint(p)
}

func toFrostPoint(p *Point) *frost.Point {
	if isIdentity(p) {
		return &frost.Point{}
	}
	return &frost.Point{X: p.X, Y: p.Y}
}

func fromFrostPoint(p *frost.Point) *Point {
	if p == nil || p.X == nil {
		return identity()
	}
	return &Point{X: p.X, Y: p.Y}
}
