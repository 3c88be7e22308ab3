package usecase

import (
	"context"
	"errors"
	"strings"

	"ppe-inventory/internal/auth"
	"ppe-inventory/internal/auth/repository"
)

// SignIn authenticates an operator. Attempts beyond the per-client budget
// fail with a rate_limited Failure without reaching the provider.
func (uc *implUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.Session, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return auth.Session{}, auth.NewFailure(auth.FailureMalformedEmail, nil)
	}
	if input.Password == "" {
		return auth.Session{}, auth.NewFailure(auth.FailureBadCredential, nil)
	}

	if !uc.limiter.Allow(input.ClientKey) {
		uc.l.Warnf(ctx, "auth.SignIn: rate limit exceeded for %s", input.ClientKey)
		return auth.Session{}, auth.NewFailure(auth.FailureRateLimited, nil)
	}

	session, err := uc.provider.SignInWithPassword(ctx, repository.SignInOptions{
		Email:    email,
		Password: input.Password,
	})
	if err != nil {
		if f, ok := auth.AsFailure(err); ok {
			uc.l.Infof(ctx, "auth.SignIn: rejected %s: %s", email, f.Kind)
		} else {
			uc.l.Errorf(ctx, "auth.SignIn SignInWithPassword: %v", err)
		}
		return auth.Session{}, err
	}

	uc.l.Infof(ctx, "auth.SignIn: %s signed in", session.UID)
	uc.notify(&session)
	return session, nil
}

// SignOut revokes every token of the session's account.
func (uc *implUseCase) SignOut(ctx context.Context, session auth.Session) error {
	if session.UID == "" {
		return auth.ErrNoSession
	}
	if err := uc.provider.RevokeSessions(ctx, session.UID); err != nil {
		if !errors.Is(err, auth.ErrNoSession) {
			uc.l.Errorf(ctx, "auth.SignOut RevokeSessions: %v", err)
		}
		return err
	}

	uc.l.Infof(ctx, "auth.SignOut: %s signed out", session.UID)
	uc.notify(nil)
	return nil
}

// Verify resolves a bearer token into the session it belongs to.
func (uc *implUseCase) Verify(ctx context.Context, idToken string) (auth.Session, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return auth.Session{}, auth.ErrMissingToken
	}
	return uc.provider.VerifyIDToken(ctx, idToken)
}
