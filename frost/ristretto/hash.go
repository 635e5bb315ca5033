package ristretto

import (
	"math/big"

	"golang.org/x/crypto/blake2b"

	"threshold.network/frost-ecgfp5/frost"
)

// contextPrefix is FROST-ristretto255-BLAKE2b-v1, this ciphersuite's domain
// separator, following the Blake2bHasher domain-separation layout: prefix
// followed by a per-function tag followed by the inputs.
const contextPrefix = "FROST-ristretto255-BLAKE2b-v1"

// Ciphersuite is the ristretto255/BLAKE2b [FROST] Ciphersuite.
type Ciphersuite struct {
	curve *Curve
}

// New creates a Ciphersuite ready to be used for [FROST] protocol execution.
func New() *Ciphersuite {
	return &Ciphersuite{curve: &Curve{}}
}

// Curve returns the ristretto255 group implementation.
func (cs *Ciphersuite) Curve() frost.Curve {
	return cs.curve
}

func (cs *Ciphersuite) H1(m []byte) *big.Int {
	return hashToScalar("rho", m)
}

func (cs *Ciphersuite) H2(m []byte, ms ...[]byte) *big.Int {
	return hashToScalar("chal", concatAll(m, ms))
}

func (cs *Ciphersuite) H3(m []byte, ms ...[]byte) *big.Int {
	return hashToScalar("nonce", concatAll(m, ms))
}

func (cs *Ciphersuite) H4(m []byte) []byte {
	return hash("msg", m)
}

func (cs *Ciphersuite) H5(m []byte) []byte {
	return hash("com", m)
}

func (cs *Ciphersuite) HDKG(m []byte) *big.Int {
	return hashToScalar("dkg", m)
}

func (cs *Ciphersuite) HID(m []byte) (*big.Int, error) {
	id := hashToScalar("id", m)
	if id.Sign() == 0 {
		return nil, frost.ErrInvalidZeroScalar
	}
	return id, nil
}

func hash(tag string, data ...[]byte) []byte {
	hasher, _ := blake2b.New512(nil)
	hasher.Write([]byte(contextPrefix))
	hasher.Write([]byte(tag))
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// hashToScalar hashes data and reduces the 64-byte Blake2b-512 output,
// interpreted little-endian as [original_source] specifies, into a scalar
// modulo the ristretto255 group order.
func hashToScalar(tag string, data ...[]byte) *big.Int {
	digest := hash(tag, data...)
	reversed := make([]byte, len(digest))
	for i, b := range digest {
		reversed[len(digest)-1-i] = b
	}
	h := new(big.Int).SetBytes(reversed)
	return h.Mod(h, groupOrder)
}

func concatAll(first []byte, rest [][]byte) []byte {
	out := make([]byte, len(first))
	copy(out, first)
	for _, r := range rest {
		out = append(out, r...)
	}
	return out
}
