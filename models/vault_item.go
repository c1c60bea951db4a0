package models

import "time"

// CipheredField is a string alias representing an encrypted field value.
// The structure and meaning of the content are unknown to the server and
// the database: both persist and return it verbatim.
type CipheredField string

// VaultItem is the wire and storage form of a vault record. Every user
// supplied text field is an independently encrypted blob; only ID,
// ownership and timestamps are plaintext.
type VaultItem struct {
	// ID is the server-assigned unique identifier of the record.
	ID string `json:"id"`

	// UserID is the owner of this vault item.
	// It is resolved server-side from the bearer token, never from the body.
	UserID int64 `json:"user_id,omitempty"`

	// Title is the encrypted display name of the record.
	Title CipheredField `json:"title"`

	// Username is the encrypted login/username value.
	Username CipheredField `json:"username"`

	// Password is the encrypted password value.
	Password CipheredField `json:"password"`

	// URL is the encrypted site address. May be an encryption of "".
	URL CipheredField `json:"url"`

	// Notes is the encrypted free-form notes. May be an encryption of "".
	Notes CipheredField `json:"notes"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the VaultItem model.
func (v *VaultItem) TableName() string {
	return "vault_items"
}

// VaultRecord is the plaintext counterpart of a VaultItem. It exists only
// in client memory: records are decrypted after download and encrypted
// before upload, field by field. A VaultRecord must never be serialized to
// the network or durable storage.
type VaultRecord struct {
	// ID is the server-assigned identifier, empty for records not yet created.
	ID string

	Title    string
	Username string
	Password string
	URL      string
	Notes    string
}

// Valid reports whether the record satisfies the save-time invariant:
// title, username and password are non-empty. URL and notes may be empty.
func (r VaultRecord) Valid() bool {
	return r.Title != "" && r.Username != "" && r.Password != ""
}
