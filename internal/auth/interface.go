package auth

import "context"

// UseCase fronts the identity provider.
//
//go:generate mockery --name UseCase
type UseCase interface {
	SignIn(ctx context.Context, input SignInInput) (Session, error)
	SignOut(ctx context.Context, session Session) error
	// OnAuthChange registers fn to be called with the new session after every
	// sign-in, and with nil after every sign-out. The returned func removes it.
	OnAuthChange(fn func(*Session)) (unsubscribe func())
	Verify(ctx context.Context, idToken string) (Session, error)
}
