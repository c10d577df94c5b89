package auth

import (
	"tripweaver/tokens"
)

// Handler owns the credential endpoints. The token service is injected
// so the signing secret never lives in a package global.
type Handler struct {
	Tokens *tokens.Service
}

func NewHandler(ts *tokens.Service) *Handler {
	return &Handler{Tokens: ts}
}
