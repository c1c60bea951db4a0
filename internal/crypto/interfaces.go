package crypto

// FieldCipher is the client-side contract for encrypting and decrypting a
// single text field of a vault record. Every field of every record is its
// own encrypt/decrypt unit; there is no envelope across fields.
//
// The secret is the user's master password. It is used only as key
// material: a fresh key is derived per call from a random salt, so the
// same plaintext encrypted twice with the same secret yields different
// ciphertexts.
type FieldCipher interface {
	// EncryptField encrypts plaintext under a key derived from secret and
	// returns a base64 blob safe to store on the server. An empty plaintext
	// is a valid input and round-trips to an empty plaintext.
	// Returns an error only on entropy or cipher construction failure.
	EncryptField(plaintext, secret string) (string, error)

	// DecryptField reverses EncryptField. It never fails to the caller:
	// a wrong secret, corrupted or truncated ciphertext all degrade to ""
	// with the cause recorded in the diagnostic log. Callers cannot
	// distinguish "could not decrypt" from "decrypted to empty string".
	DecryptField(ciphertext, secret string) string
}
