// Package messaging implements rooms: append-only encrypted message
// logs with per-room gapless sequences, reactions, read markers, and
// presence heartbeats.
package messaging

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
	"os"

	"github.com/scriptor-ai/scriptor/pkg/fault"
)

const masterKeyLen = 32

// Envelope is the at-rest form of one message body: ciphertext under a
// random per-message DEK, the DEK wrapped by the versioned master key.
// Per-room key derivation is reserved for a future key_version.
type Envelope struct {
	Ciphertext []byte
	Nonce      []byte
	WrappedDEK []byte
	DEKNonce   []byte
	KeyVersion int
}

// Cipher performs envelope encryption with a single master key.
type Cipher struct {
	master     cipher.AEAD
	keyVersion int
}

// LoadMasterKey reads the base64-encoded 32-byte master key from the
// named environment variable.
func LoadMasterKey(envVar string) ([]byte, error) {
	raw := os.Getenv(envVar)
	if raw == "" {
		return nil, fault.New(fault.KindFatalConfig, "master key environment variable %s is not set", envVar)
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fault.Wrap(fault.KindFatalConfig, err, "master key in %s is not valid base64", envVar)
	}
	if len(key) != masterKeyLen {
		return nil, fault.New(fault.KindFatalConfig, "master key in %s must be %d bytes, got %d", envVar, masterKeyLen, len(key))
	}
	return key, nil
}

// NewCipher creates an envelope cipher over the master key.
func NewCipher(masterKey []byte, keyVersion int) (*Cipher, error) {
	if len(masterKey) != masterKeyLen {
		return nil, fault.New(fault.KindFatalConfig, "master key must be %d bytes, got %d", masterKeyLen, len(masterKey))
	}
	if keyVersion <= 0 {
		keyVersion = 1
	}
	aead, err := newAEAD(masterKey)
	if err != nil {
		return nil, err
	}
	return &Cipher{master: aead, keyVersion: keyVersion}, nil
}

// KeyVersion is the version recorded on envelopes this cipher seals.
func (c *Cipher) KeyVersion() int { return c.keyVersion }

// Encrypt seals plaintext under a fresh random DEK and wraps the DEK
// with the master key.
func (c *Cipher) Encrypt(plaintext []byte) (*Envelope, error) {
	dek := make([]byte, masterKeyLen)
	if _, err := io.ReadFull(rand.Reader, dek); err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to generate DEK")
	}
	dataAEAD, err := newAEAD(dek)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, dataAEAD.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to generate nonce")
	}
	ciphertext := dataAEAD.Seal(nil, nonce, plaintext, nil)

	dekNonce := make([]byte, c.master.NonceSize())
	if _, err := io.ReadFull(rand.Reader, dekNonce); err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to generate DEK nonce")
	}
	wrapped := c.master.Seal(nil, dekNonce, dek, nil)

	return &Envelope{
		Ciphertext: ciphertext,
		Nonce:      nonce,
		WrappedDEK: wrapped,
		DEKNonce:   dekNonce,
		KeyVersion: c.keyVersion,
	}, nil
}

// Decrypt unwraps the DEK and opens the ciphertext.
func (c *Cipher) Decrypt(env *Envelope) ([]byte, error) {
	if env.KeyVersion != c.keyVersion {
		return nil, fault.New(fault.KindBadInput, "envelope key version %d does not match cipher version %d", env.KeyVersion, c.keyVersion)
	}
	dek, err := c.master.Open(nil, env.DEKNonce, env.WrappedDEK, nil)
	if err != nil {
		return nil, fault.Wrap(fault.KindBadInput, err, "failed to unwrap DEK")
	}
	dataAEAD, err := newAEAD(dek)
	if err != nil {
		return nil, err
	}
	plaintext, err := dataAEAD.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, fault.Wrap(fault.KindBadInput, err, "failed to decrypt message body")
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fault.Wrap(fault.KindFatalConfig, err, "failed to initialise AES cipher")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fault.Wrap(fault.KindFatalConfig, err, "failed to initialise GCM")
	}
	return aead, nil
}
