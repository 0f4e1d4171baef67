package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string

	// Provider indica quién validó el token ("session", "remote", "debug").
	Provider string
}

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Chain prueba cada verifier en orden y devuelve el primero que acepta el token.
// Los nil se ignoran, así el router puede pasar adapters opcionales sin chequear.
func Chain(verifiers ...AuthVerifier) AuthVerifier {
	out := make(chainVerifier, 0, len(verifiers))
	for _, v := range verifiers {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

type chainVerifier []AuthVerifier

func (c chainVerifier) Verify(ctx context.Context, token string) (Claims, error) {
	var errs []error
	for _, v := range c {
		claims, err := v.Verify(ctx, token)
		if err == nil {
			return claims, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return Claims{}, ErrUnauthenticated
	}
	return Claims{}, errors.Join(append([]error{ErrUnauthenticated}, errs...)...)
}
