package remote

import (
	"context"
	"fmt"

	"pet-exercise-tracker/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier sobre Client.
type Verifier struct {
	client *Client
}

// NewVerifier devuelve nil si client es nil, para que auth.Chain lo ignore.
func NewVerifier(client *Client) auth.AuthVerifier {
	if client == nil {
		return nil
	}
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("remote verify failed: %w", err)
	}
	return claims, nil
}
