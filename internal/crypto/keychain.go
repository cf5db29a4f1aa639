// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/quillchat/chatvault/models"
)

const (
	saltSize = 16
	keySize  = 32
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  keySize,
	}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveMasterKey implements [KeyChainService]. It derives a 256-bit master
// key from password and salt using Argon2id with the parameters stored in
// the receiver.
func (k *keyChainService) DeriveMasterKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// GenerateConversationKey implements [KeyChainService]. It reads 32 random
// bytes from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateConversationKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// WrapKey implements [KeyChainService]. It encrypts raw under masterKey with
// AES-256-GCM and a fresh random nonce. Nonce and ciphertext are returned as
// separate base64 fields so the record format matches the remote key store.
func (k *keyChainService) WrapKey(raw, masterKey []byte) (models.WrappedKey, error) {
	gcm, err := newGCM(masterKey)
	if err != nil {
		return models.WrappedKey{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.WrappedKey{}, fmt.Errorf("generate wrapping nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, raw, nil)
	return models.WrappedKey{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
	}, nil
}

// UnwrapKey implements [KeyChainService]. It decrypts a wrapped key produced
// by [keyChainService.WrapKey]. An authentication error here almost always
// means the wrong master password was used, producing a wrong master key.
func (k *keyChainService) UnwrapKey(wrapped models.WrappedKey, masterKey []byte) ([]byte, error) {
	gcm, err := newGCM(masterKey)
	if err != nil {
		return nil, err
	}

	nonce, err := base64.StdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode wrapping nonce: %w", err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("wrapping nonce length = %d, want %d", len(nonce), gcm.NonceSize())
	}

	ciphertext, err := base64.StdEncoding.DecodeString(wrapped.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode wrapped key: %w", err)
	}

	raw, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}
	return raw, nil
}

// Fingerprint implements [KeyChainService]. It returns the hex SHA-256
// digest of raw (64 hex characters for a 256-bit key).
func (k *keyChainService) Fingerprint(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// AuthHash implements [KeyChainService]. It computes
// SHA-256(masterKey ‖ domain). The fixed domain string separates this hash
// from the master key itself, ensuring the two values have different
// purposes even though they derive from the same material.
func (k *keyChainService) AuthHash(masterKey []byte, domain string) []byte {
	h := sha256.New()
	h.Write(masterKey)
	h.Write([]byte(domain)) // domain-separates AuthHash from the master key
	return h.Sum(nil)
}

// Encrypt implements [KeyChainService]. It seals plaintext with AES-256-GCM
// under key, authenticating aad alongside the ciphertext. Every call draws a
// fresh 12-byte nonce from the CSPRNG.
func (k *keyChainService) Encrypt(plaintext, key, aad []byte) (models.EncryptedBlob, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, aad)
	return models.EncryptedBlob{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
	}, nil
}

// Decrypt implements [KeyChainService]. It opens a blob sealed by
// [keyChainService.Encrypt] with the same key and aad. Any bit flip in the
// ciphertext, nonce, tag, or aad fails the authentication check.
func (k *keyChainService) Decrypt(blob models.EncryptedBlob, key, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := base64.StdEncoding.DecodeString(blob.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("nonce length = %d, want %d", len(nonce), gcm.NonceSize())
	}

	ciphertext, err := base64.StdEncoding.DecodeString(blob.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
