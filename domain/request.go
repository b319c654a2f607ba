package domain

import (
	"errors"
	"strings"
)

// ChatRequest is the inbound request for one conversation turn.
type ChatRequest struct {
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ErrInvalidRequest is returned when required request fields are missing.
var ErrInvalidRequest = errors.New("user_id and message are required")

// Validate checks required fields and normalizes the message.
func (r *ChatRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.UserID == "" || r.Message == "" {
		return ErrInvalidRequest
	}
	return nil
}
