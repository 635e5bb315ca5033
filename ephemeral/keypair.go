package ephemeral

import "github.com/btcsuite/btcd/btcec"

// PrivateKey is an ephemeral Elliptic Curve private key used only to derive a
// SymmetricEcdhKey with another party's PublicKey; it is never used to sign
// or authenticate anything on its own.
type PrivateKey btcec.PrivateKey

// PublicKey is the public half of an ephemeral PrivateKey, broadcast in the
// clear so other group members can derive a shared SymmetricEcdhKey with its
// owner.
type PublicKey btcec.PublicKey

// KeyPair is an ephemeral Elliptic Curve key pair generated fresh for a
// single protocol run and discarded afterward.
type KeyPair struct {
	PrivateKey *PrivateKey
	PublicKey  *PublicKey
}

// GenerateKeyPair generates a new ephemeral KeyPair on the secp256k1 curve.
func GenerateKeyPair() (*KeyPair, error) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		PrivateKey: (*PrivateKey)(key),
		PublicKey:  (*PublicKey)(key.PubKey()),
	}, nil
}
