package memory

import (
	"context"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"ppe-inventory/internal/auth"
	"ppe-inventory/internal/auth/repository"
)

// SignInWithPassword checks the credentials against the configured accounts.
func (p *implProvider) SignInWithPassword(ctx context.Context, opt repository.SignInOptions) (auth.Session, error) {
	email := strings.ToLower(strings.TrimSpace(opt.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return auth.Session{}, auth.NewFailure(auth.FailureMalformedEmail, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	acc, ok := p.accounts[email]
	if !ok {
		return auth.Session{}, auth.NewFailure(auth.FailureUnknownAccount, nil)
	}
	if acc.password != opt.Password {
		return auth.Session{}, auth.NewFailure(auth.FailureBadCredential, nil)
	}

	token := uuid.NewString()
	s := session{uid: acc.uid, email: email, expiresAt: p.now().Add(tokenTTL)}
	p.sessions[token] = s

	p.l.Debugf(ctx, "%s: issued token for %s", p.dsn("SignInWithPassword"), acc.uid)
	return auth.Session{
		UID:          s.uid,
		Email:        s.email,
		IDToken:      token,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    s.expiresAt,
	}, nil
}

// VerifyIDToken looks the token up among the live sessions.
func (p *implProvider) VerifyIDToken(ctx context.Context, idToken string) (auth.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sessions[idToken]
	if !ok {
		return auth.Session{}, auth.ErrInvalidToken
	}
	if !p.now().Before(s.expiresAt) {
		delete(p.sessions, idToken)
		return auth.Session{}, auth.ErrInvalidToken
	}
	return auth.Session{UID: s.uid, Email: s.email, IDToken: idToken, ExpiresAt: s.expiresAt}, nil
}

// RevokeSessions drops every token issued to uid.
func (p *implProvider) RevokeSessions(ctx context.Context, uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for token, s := range p.sessions {
		if s.uid == uid {
			delete(p.sessions, token)
		}
	}
	return nil
}
