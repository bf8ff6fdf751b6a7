package response

import "github.com/linskybing/residence-hub/internal/domain/outcome"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
}

// OutcomeResponse carries a core operation result back to the client.
type OutcomeResponse struct {
	outcome.Result
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
