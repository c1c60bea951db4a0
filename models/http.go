package models

// Credentials is the request body of the signup and login endpoints.
// Password carries the plaintext master password; it travels only inside
// the transport-encrypted channel and is hashed immediately on arrival.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success body of the signup and login endpoints.
type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// ItemResponse wraps a single vault item in mutation responses.
type ItemResponse struct {
	Message string    `json:"message"`
	Item    VaultItem `json:"item"`
}

// MessageResponse is the body of responses that carry no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body of the HTTP API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
