package models

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// MessageResponse is the generic body for confirmations and errors.
// Details is only filled for validation failures (field -> reason).
type MessageResponse struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}
