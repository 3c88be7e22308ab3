package firebase

import (
	"context"
	"fmt"
	"os"

	fbauth "firebase.google.com/go/v4/auth"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"ppe-inventory/internal/auth/repository"
	"ppe-inventory/pkg/log"
)

// authEmulatorEnv points both the Admin SDK and password sign-in at the
// Firebase Auth emulator.
const authEmulatorEnv = "FIREBASE_AUTH_EMULATOR_HOST"

// tokenVerifier is the part of the Admin SDK client the provider uses.
type tokenVerifier interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*fbauth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

type implProvider struct {
	l       log.Logger
	admin   tokenVerifier
	toolkit *identitytoolkit.Service
}

// New creates a Firebase-backed IdentityProvider. Password sign-in goes
// through the Identity Toolkit REST API with the project's web API key;
// token checks and revocation use the Admin SDK client.
func New(ctx context.Context, l log.Logger, admin *fbauth.Client, apiKey string) (repository.IdentityProvider, error) {
	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if host := os.Getenv(authEmulatorEnv); host != "" {
		opts = append(opts, option.WithEndpoint(fmt.Sprintf("http://%s/www.googleapis.com/identitytoolkit/v3/relyingparty/", host)))
	}

	toolkit, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit.NewService: %w", err)
	}
	return &implProvider{l: l, admin: admin, toolkit: toolkit}, nil
}

func (p *implProvider) dsn(method string) string {
	return fmt.Sprintf("auth/repository/firebase.%s", method)
}
