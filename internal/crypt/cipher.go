package crypt

import (
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/pbkdf2"
)

const (
	keyDerivationIterations = 4096
	keyDerivationSalt       = "lamp.field-cipher.v1"
)

var ErrEmptySecret = errors.New("field cipher secret is empty")

// Cipher encrypts and decrypts single field values. Implementations must be
// deterministic and safe for concurrent use.
type Cipher interface {
	Encrypt(plaintext string) string
	// Decrypt returns false when the input is not a ciphertext produced by
	// Encrypt (e.g. legacy plaintext) or fails authentication.
	Decrypt(ciphertext string) (string, bool)
}

// FieldCipher is a deterministic AEAD cipher: the nonce is derived from the
// plaintext, so equal plaintexts give equal ciphertexts. This is what allows
// encrypted columns (participant ids) to be used as equality filters.
type FieldCipher struct {
	aead   cipher.AEAD
	macKey []byte
}

func NewFieldCipher(secret string) (*FieldCipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := pbkdf2.Key([]byte(secret), []byte(keyDerivationSalt), keyDerivationIterations, 2*chacha20poly1305.KeySize, sha256.New)
	aead, err := chacha20poly1305.New(key[:chacha20poly1305.KeySize])
	if err != nil {
		return nil, fmt.Errorf("new aead: %w", err)
	}

	return &FieldCipher{
		aead:   aead,
		macKey: key[chacha20poly1305.KeySize:],
	}, nil
}

func (c *FieldCipher) Encrypt(plaintext string) string {
	mac := hmac.New(sha256.New, c.macKey)
	mac.Write([]byte(plaintext))
	nonce := mac.Sum(nil)[:c.aead.NonceSize()]

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed)
}

func (c *FieldCipher) Decrypt(ciphertext string) (string, bool) {
	sealed, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil || len(sealed) < c.aead.NonceSize()+c.aead.Overhead() {
		return "", false
	}

	nonce, box := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, box, nil)
	if err != nil {
		return "", false
	}
	return string(plaintext), true
}

// DecryptOrRaw is the legacy two-step decode: values written before field
// encryption was introduced are stored as plaintext, so when decryption fails
// the raw value is used as is.
func DecryptOrRaw(c Cipher, value string) string {
	if plaintext, ok := c.Decrypt(value); ok && plaintext != "" {
		return plaintext
	}
	return value
}
