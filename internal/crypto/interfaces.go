package crypto

import "github.com/quillchat/chatvault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every cryptographic primitive of the vault. It knows
// nothing about sessions, storage, or the network; its single job is to
// derive, generate, protect, and apply keys.
//
// Key hierarchy:
//
//	Salt      = GenerateSalt()                      (once per user)
//	MasterKey = DeriveMasterKey(password, salt)     (every setup/unlock)
//	ConvKey   = GenerateConversationKey()           (once per conversation)
//	Wrapped   = WrapKey(ConvKey, MasterKey)         (before any persistence)
type KeyChainService interface {
	// GenerateSalt returns a random 16-byte KDF salt. The salt is not a
	// secret; it exists so that equal passwords derive different master
	// keys for different users.
	GenerateSalt() ([]byte, error)

	// DeriveMasterKey stretches the password into a 256-bit AEAD key with
	// Argon2id. The result lives only in client memory while the vault is
	// unlocked and is never persisted or transmitted.
	DeriveMasterKey(password string, salt []byte) []byte

	// GenerateConversationKey returns a fresh random 256-bit key used to
	// encrypt all content of a single conversation.
	GenerateConversationKey() ([]byte, error)

	// WrapKey encrypts raw key bytes under the master key with AES-256-GCM
	// and a fresh nonce. The result is safe to store anywhere: without the
	// master key it is indistinguishable from random noise.
	WrapKey(raw, masterKey []byte) (models.WrappedKey, error)

	// UnwrapKey reverses WrapKey. It returns an error when the master key is
	// wrong or the record was tampered with (authentication-tag mismatch).
	UnwrapKey(wrapped models.WrappedKey, masterKey []byte) ([]byte, error)

	// Fingerprint returns the hex SHA-256 digest of raw key bytes. The
	// fingerprint is a non-secret identity check for server-side
	// deduplication, never an access credential.
	Fingerprint(raw []byte) string

	// AuthHash computes SHA-256(masterKey ‖ domain). The domain string
	// separates this digest from any other use of the master key, so the
	// server-side login check cannot be replayed against wrapped keys.
	AuthHash(masterKey []byte, domain string) []byte

	// Encrypt seals plaintext with AES-256-GCM under key, binding aad as
	// associated data. A fresh 12-byte nonce is generated per call and
	// returned alongside the ciphertext, both base64-encoded.
	Encrypt(plaintext, key, aad []byte) (models.EncryptedBlob, error)

	// Decrypt opens a blob produced by Encrypt. The same aad must be
	// supplied; any mismatch of key, nonce, ciphertext, tag, or aad fails.
	Decrypt(blob models.EncryptedBlob, key, aad []byte) ([]byte, error)
}
