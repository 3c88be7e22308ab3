package usecase

import (
	"context"
	"errors"
	"testing"

	"ppe-inventory/internal/auth"
	"ppe-inventory/internal/auth/repository"
	"ppe-inventory/internal/auth/repository/memory"
	"ppe-inventory/pkg/log"
)

const (
	testEmail    = "bodega@example.com"
	testPassword = "secreto"
)

func newTestUseCase(loginsPerMin int) *implUseCase {
	provider := memory.New(log.NewNop(), map[string]string{testEmail: testPassword})
	return New(log.NewNop(), provider, loginsPerMin).(*implUseCase)
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc := newTestUseCase(60)
		s, err := uc.SignIn(ctx, auth.SignInInput{Email: testEmail, Password: testPassword, ClientKey: "10.0.0.1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.IDToken == "" || s.Email != testEmail {
			t.Errorf("unexpected session: %+v", s)
		}
	})

	t.Run("Failure Kinds", func(t *testing.T) {
		uc := newTestUseCase(600)
		tcs := map[string]struct {
			input auth.SignInInput
			want  auth.FailureKind
		}{
			"Empty Email":     {auth.SignInInput{Password: "x"}, auth.FailureMalformedEmail},
			"Empty Password":  {auth.SignInInput{Email: testEmail}, auth.FailureBadCredential},
			"Malformed Email": {auth.SignInInput{Email: "bodega", Password: "x"}, auth.FailureMalformedEmail},
			"Unknown Account": {auth.SignInInput{Email: "nadie@example.com", Password: "x"}, auth.FailureUnknownAccount},
			"Wrong Password":  {auth.SignInInput{Email: testEmail, Password: "x"}, auth.FailureBadCredential},
		}
		for name, tc := range tcs {
			t.Run(name, func(t *testing.T) {
				_, err := uc.SignIn(ctx, tc.input)
				f, ok := auth.AsFailure(err)
				if !ok || f.Kind != tc.want {
					t.Errorf("expected %s, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("Rate Limited Per Client", func(t *testing.T) {
		uc := newTestUseCase(2) // burst of one
		in := auth.SignInInput{Email: testEmail, Password: "wrong", ClientKey: "10.0.0.2"}

		if _, err := uc.SignIn(ctx, in); err == nil {
			t.Fatal("expected bad credential")
		}
		_, err := uc.SignIn(ctx, in)
		f, ok := auth.AsFailure(err)
		if !ok || f.Kind != auth.FailureRateLimited {
			t.Fatalf("expected rate_limited, got %v", err)
		}

		other := in
		other.ClientKey = "10.0.0.3"
		other.Password = testPassword
		if _, err := uc.SignIn(ctx, other); err != nil {
			t.Errorf("other clients must not be limited: %v", err)
		}
	})
}

func TestVerifyAndSignOut(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(60)

	s, err := uc.SignIn(ctx, auth.SignInInput{Email: testEmail, Password: testPassword})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := uc.Verify(ctx, "  "); !errors.Is(err, auth.ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}

	verified, err := uc.Verify(ctx, s.IDToken)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if verified.UID != s.UID {
		t.Errorf("uid = %s, want %s", verified.UID, s.UID)
	}

	if err := uc.SignOut(ctx, verified); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := uc.Verify(ctx, s.IDToken); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected token to be revoked, got %v", err)
	}

	if err := uc.SignOut(ctx, auth.Session{}); !errors.Is(err, auth.ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestOnAuthChange(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(60)

	var events []*auth.Session
	unsubscribe := uc.OnAuthChange(func(s *auth.Session) { events = append(events, s) })

	s, err := uc.SignIn(ctx, auth.SignInInput{Email: testEmail, Password: testPassword})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uc.SignIn(ctx, auth.SignInInput{Email: testEmail, Password: "wrong"}); err == nil {
		t.Fatal("expected failure")
	}
	if err := uc.SignOut(ctx, s); err != nil {
		t.Fatal(err)
	}

	if len(events) != 2 {
		t.Fatalf("expected sign-in and sign-out events, got %d", len(events))
	}
	if events[0] == nil || events[0].UID != s.UID {
		t.Errorf("first event should carry the session, got %+v", events[0])
	}
	if events[1] != nil {
		t.Errorf("sign-out event should be nil, got %+v", events[1])
	}

	unsubscribe()
	if _, err := uc.SignIn(ctx, auth.SignInInput{Email: testEmail, Password: testPassword}); err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Errorf("unsubscribed callback still called")
	}
}

// failingProvider simulates an unreachable identity provider.
type failingProvider struct{}

func (failingProvider) SignInWithPassword(ctx context.Context, opt repository.SignInOptions) (auth.Session, error) {
	return auth.Session{}, auth.ErrProviderUnavailable
}

func (failingProvider) VerifyIDToken(ctx context.Context, idToken string) (auth.Session, error) {
	return auth.Session{}, auth.ErrProviderUnavailable
}

func (failingProvider) RevokeSessions(ctx context.Context, uid string) error {
	return auth.ErrProviderUnavailable
}

func TestProviderUnavailable(t *testing.T) {
	uc := New(log.NewNop(), failingProvider{}, 60)
	_, err := uc.SignIn(context.Background(), auth.SignInInput{Email: testEmail, Password: testPassword})
	if !errors.Is(err, auth.ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, ok := auth.AsFailure(err); ok {
		t.Errorf("provider outage is not a credential failure")
	}
}
