package usecase

import (
	"sync"

	"ppe-inventory/internal/auth"
	"ppe-inventory/internal/auth/repository"
	"ppe-inventory/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	provider repository.IdentityProvider
	limiter  *rateLimiter

	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(*auth.Session)
}

// New creates the auth UseCase. loginsPerMin bounds sign-in attempts per
// client key.
func New(l log.Logger, provider repository.IdentityProvider, loginsPerMin int) auth.UseCase {
	return &implUseCase{
		l:           l,
		provider:    provider,
		limiter:     newRateLimiter(loginsPerMin),
		subscribers: make(map[int]func(*auth.Session)),
	}
}
