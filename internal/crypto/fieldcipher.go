// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"golang.org/x/crypto/argon2"
)

// saltLen is the length of the random per-call KDF salt in bytes.
const saltLen = 16

// fieldCipher is the private implementation of [FieldCipher].
type fieldCipher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target: the cipher runs the KDF once per
	// field per call, so the per-call cost matters more here than in a
	// login-only KDF.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	logger *logger.Logger
}

// NewFieldCipher constructs a [FieldCipher] with the second OWASP (2024)
// Argon2id configuration:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (256 bits)
//
// Decryption failures are reported only through log; they are invisible to
// callers by contract.
func NewFieldCipher(log *logger.Logger) FieldCipher {
	return &fieldCipher{
		argonTime:    2,
		argonMemory:  19 * 1024, // 19 MiB
		argonThreads: 1,
		argonKeyLen:  32, // 256 bits
		logger:       log,
	}
}

// EncryptField implements [FieldCipher]. It reads a fresh 16-byte salt from
// the OS CSPRNG, derives a 256-bit key from secret with Argon2id, and seals
// plaintext with AES-256-GCM under a random 12-byte nonce. The output is a
// Base64 (standard encoding) string of the blob: salt ‖ nonce ‖ ciphertext.
func (c *fieldCipher) EncryptField(plaintext, secret string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.aead(secret, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend salt and nonce so decryption can split them out again:
	// blob = salt ‖ nonce ‖ ciphertext.
	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptField implements [FieldCipher]. Any failure — wrong secret,
// truncated blob, bad base64, auth-tag mismatch — degrades to an empty
// string; the cause goes to the diagnostic log and nowhere else, so that a
// single undecryptable field can never take down the record it belongs to.
func (c *fieldCipher) DecryptField(ciphertext, secret string) string {
	plaintext, err := c.decryptField(ciphertext, secret)
	if err != nil {
		// Log the shape of the failure only. Neither the ciphertext nor the
		// secret may appear here.
		c.logger.Warn().Err(err).Int("ciphertext_len", len(ciphertext)).Msg("field decryption failed")
		return ""
	}
	return plaintext
}

// decryptField is the strict counterpart of DecryptField. It reports the
// failure instead of swallowing it and exists for tests and internal
// diagnostics; the lenient contract applies only at the public boundary.
func (c *fieldCipher) decryptField(ciphertext, secret string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	if len(blob) < saltLen {
		return "", errors.New("ciphertext too short")
	}

	salt, rest := blob[:saltLen], blob[saltLen:]

	gcm, err := c.aead(secret, salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", errors.New("ciphertext too short")
	}
	nonce, sealed := rest[:nonceSize], rest[nonceSize:]

	// An auth-tag mismatch here almost always means the wrong master
	// password produced the wrong key.
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt field: %w", err)
	}

	return string(plaintext), nil
}

// aead derives the per-call key from secret and salt via Argon2id and
// builds the AES-256-GCM cipher for it.
func (c *fieldCipher) aead(secret string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(
		[]byte(secret),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
