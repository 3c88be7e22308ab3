package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ppe-inventory/internal/auth/repository"
	"ppe-inventory/pkg/log"
)

// tokenTTL matches the lifetime of Firebase ID tokens.
const tokenTTL = time.Hour

type account struct {
	uid      string
	password string
}

type implProvider struct {
	l   log.Logger
	now func() time.Time

	mu       sync.Mutex
	accounts map[string]account // by lower-cased email
	sessions map[string]session // by ID token
}

type session struct {
	uid       string
	email     string
	expiresAt time.Time
}

// Option customizes the in-process provider.
type Option func(*implProvider)

// WithClock overrides the clock used for token expiry.
func WithClock(now func() time.Time) Option {
	return func(p *implProvider) { p.now = now }
}

// New creates an in-process IdentityProvider holding the given accounts
// (email to password). It backs local development without a Firebase project.
func New(l log.Logger, accounts map[string]string, opts ...Option) repository.IdentityProvider {
	p := &implProvider{
		l:        l,
		now:      time.Now,
		accounts: make(map[string]account, len(accounts)),
		sessions: make(map[string]session),
	}
	for email, password := range accounts {
		key := strings.ToLower(strings.TrimSpace(email))
		p.accounts[key] = account{
			uid:      uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+key)).String(),
			password: password,
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *implProvider) dsn(method string) string {
	return fmt.Sprintf("auth/repository/memory.%s", method)
}
