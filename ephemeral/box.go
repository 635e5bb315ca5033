package ephemeral

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// box performs authenticated symmetric encryption with a 32-byte key, using
// NaCl's secretbox construction: XSalsa20 for confidentiality, Poly1305 for
// integrity. A fresh random nonce is prepended to every ciphertext so the
// same plaintext never produces the same ciphertext twice.
type box struct {
	key [32]byte
}

func newBox(key [32]byte) *box {
	return &box{key: key}
}

func (b *box) encrypt(plaintext []byte) ([]byte, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("nonce generation failed: %w", err)
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, &b.key), nil
}

func (b *box) decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 24 {
		return nil, fmt.Errorf("symmetric key decryption failed")
	}

	var nonce [24]byte
	copy(nonce[:], ciphertext[:24])

	decrypted, ok := secretbox.Open(nil, ciphertext[24:], &nonce, &b.key)
	if !ok {
		return nil, fmt.Errorf("symmetric key decryption failed")
	}

	return decrypted, nil
}
