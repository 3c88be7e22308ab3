package firebase

import (
	"context"
	"fmt"
	"strings"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"

	"ppe-inventory/internal/auth"
	"ppe-inventory/internal/auth/repository"
)

// SignInWithPassword exchanges email and password for an ID token.
func (p *implProvider) SignInWithPassword(ctx context.Context, opt repository.SignInOptions) (auth.Session, error) {
	resp, err := p.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             opt.Email,
		Password:          opt.Password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		classified := classifySignInError(err)
		if _, ok := auth.AsFailure(classified); !ok {
			p.l.Errorf(ctx, "%s: %v", p.dsn("SignInWithPassword"), err)
		}
		return auth.Session{}, classified
	}

	return auth.Session{
		UID:          resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).UTC(),
	}, nil
}

// VerifyIDToken checks signature, expiry and revocation of an ID token.
func (p *implProvider) VerifyIDToken(ctx context.Context, idToken string) (auth.Session, error) {
	token, err := p.admin.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		if fbauth.IsUserDisabled(err) {
			return auth.Session{}, auth.NewFailure(auth.FailureDisabledAccount, err)
		}
		p.l.Debugf(ctx, "%s: %v", p.dsn("VerifyIDToken"), err)
		return auth.Session{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	email, _ := token.Claims["email"].(string)
	return auth.Session{
		UID:       strings.TrimSpace(token.UID),
		Email:     strings.TrimSpace(email),
		IDToken:   idToken,
		ExpiresAt: time.Unix(token.Expires, 0).UTC(),
	}, nil
}

// RevokeSessions invalidates every refresh token of uid. ID tokens issued
// before the call fail verification afterwards.
func (p *implProvider) RevokeSessions(ctx context.Context, uid string) error {
	if err := p.admin.RevokeRefreshTokens(ctx, uid); err != nil {
		if fbauth.IsUserNotFound(err) {
			return auth.ErrNoSession
		}
		p.l.Errorf(ctx, "%s: %v", p.dsn("RevokeSessions"), err)
		return fmt.Errorf("%w: %v", auth.ErrProviderUnavailable, err)
	}
	return nil
}
