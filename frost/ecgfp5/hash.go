package ecgfp5

import (
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"

	"threshold.network/frost-ecgfp5/frost"
)

// contextString is FROST-ECGFP5-POSEIDON256-v1 from [original_source].
var contextString = []byte("FROST-ECGFP5-POSEIDON256-v1")

// poseidonInputWidth is the byte width of a field element fed to Poseidon.
// iden3's implementation hashes over the BN254 scalar field, whose modulus
// is a little under 2^254; 31 bytes (248 bits) is comfortably below that, so
// every chunk parses to a valid field element without a reduction step of
// its own.
const poseidonInputWidth = 31

// maxPoseidonInputs is the largest input arity iden3's Hash accepts in one
// call.
const maxPoseidonInputs = 16

// H1 through H5, HDKG, and HID are built the way [original_source]'s
// hash_to_scalar/hash_to_array are: tag the input with a domain-separated
// context, squeeze it through Poseidon, and reduce the result into the
// target range. Poseidon's native output is a single BN254 field element
// (< 2^254), narrower than the ~256-bit scalar field of the stand-in curve
// this package uses, so H1/H2/H3/HDKG/HID widen it first: two Poseidon
// outputs, over msg with a one-byte counter suffix 0 and 1, are
// concatenated into one integer and reduced mod the curve order.

func (cs *Ciphersuite) H1(m []byte) *big.Int {
	return cs.hashToScalar([]byte("rho"), m)
}

func (cs *Ciphersuite) H2(m []byte, ms ...[]byte) *big.Int {
	return cs.hashToScalar([]byte("chal"), concatAll(m, ms))
}

func (cs *Ciphersuite) H3(m []byte, ms ...[]byte) *big.Int {
	return cs.hashToScalar([]byte("nonce"), concatAll(m, ms))
}

func (cs *Ciphersuite) H4(m []byte) []byte {
	return cs.hashToDigest([]byte("msg"), m)
}

func (cs *Ciphersuite) H5(m []byte) []byte {
	return cs.hashToDigest([]byte("com"), m)
}

func (cs *Ciphersuite) HDKG(m []byte) *big.Int {
	return cs.hashToScalar([]byte("dkg"), m)
}

func (cs *Ciphersuite) HID(m []byte) (*big.Int, error) {
	id := cs.hashToScalar([]byte("id"), m)
	if id.Sign() == 0 {
		return nil, fmt.Errorf("%w: derived identifier is zero", frost.ErrInvalidZeroScalar)
	}
	return id, nil
}

func (cs *Ciphersuite) hashToScalar(tag, msg []byte) *big.Int {
	h := new(big.Int)
	for counter := byte(0); counter < 2; counter++ {
		block := poseidonSqueeze(tag, concatAll(msg, [][]byte{{counter}}))
		h.Lsh(h, 256)
		h.Or(h, block)
	}
	return h.Mod(h, groupOrder)
}

func (cs *Ciphersuite) hashToDigest(tag, msg []byte) []byte {
	h := poseidonSqueeze(tag, msg)
	digest := make([]byte, 32)
	h.FillBytes(digest)
	return digest
}

// poseidonSqueeze hashes contextString || tag || msg with Poseidon. The
// input is chunked into poseidonInputWidth-byte field elements; when the
// chunk count exceeds maxPoseidonInputs, the excess is folded back in
// iteratively, each round prefixing the running digest from the previous
// round, the same Merkle-Damgard-style extension a sponge construction with
// a bounded input arity needs for arbitrary-length messages.
func poseidonSqueeze(tag, msg []byte) *big.Int {
	data := concatAll(contextString, [][]byte{tag, msg})
	chunks := chunk(data, poseidonInputWidth)

	var acc *big.Int
	for len(chunks) > 0 {
		batchSize := maxPoseidonInputs
		if acc != nil {
			batchSize--
		}
		if batchSize > len(chunks) {
			batchSize = len(chunks)
		}

		inputs := make([]*big.Int, 0, maxPoseidonInputs)
		if acc != nil {
			inputs = append(inputs, acc)
		}
		for _, c := range chunks[:batchSize] {
			inputs = append(inputs, new(big.Int).SetBytes(c))
		}
		chunks = chunks[batchSize:]

		h, err := poseidon.Hash(inputs)
		if err != nil {
			// Every input is constructed to be a well-formed, in-range field
			// element above, so Hash can only fail on a length mismatch this
			// package's own chunking logic has a bug in.
			panic(fmt.Sprintf("ecgfp5: poseidon hash failed: %v", err))
		}
		acc = h
	}

	if acc == nil {
		// Not reached while data starts with the non-empty contextString;
		// kept so that zero chunks still produce a well-defined output
		// rather than hashing zero inputs.
		h, err := poseidon.Hash([]*big.Int{big.NewInt(0)})
		if err != nil {
			panic(fmt.Sprintf("ecgfp5: poseidon hash failed: %v", err))
		}
		return h
	}

	return acc
}

func chunk(data []byte, size int) [][]byte {
	var out [][]byte
	for len(data) > 0 {
		n := size
		if n > len(data) {
			n = len(data)
		}
		out = append(out, data[:n])
		data = data[n:]
	}
	return out
}

func concatAll(first []byte, rest [][]byte) []byte {
	out := make([]byte, len(first))
	copy(out, first)
	for _, r := range rest {
		out = append(out, r...)
	}
	return out
}
