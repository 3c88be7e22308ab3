package repository

import (
	"context"

	"ppe-inventory/internal/auth"
)

// IdentityProvider is the external account service.
//
// SignInWithPassword returns *auth.Failure for rejected credentials and
// auth.ErrProviderUnavailable when the provider cannot be reached.
// VerifyIDToken returns auth.ErrInvalidToken for bad, expired or revoked
// tokens.
type IdentityProvider interface {
	SignInWithPassword(ctx context.Context, opt SignInOptions) (auth.Session, error)
	VerifyIDToken(ctx context.Context, idToken string) (auth.Session, error)
	RevokeSessions(ctx context.Context, uid string) error
}

// SignInOptions holds password credentials.
type SignInOptions struct {
	Email    string
	Password string
}
