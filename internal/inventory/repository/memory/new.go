package memory

import (
	"fmt"
	"sync"
	"time"

	"ppe-inventory/internal/inventory"
	"ppe-inventory/internal/inventory/repository"
	"ppe-inventory/pkg/log"
)

type implRepository struct {
	l   log.Logger
	now func() time.Time

	mu          sync.RWMutex
	collections map[inventory.Category]*collection
}

// collection keeps documents in insertion order.
type collection struct {
	order []string
	docs  map[string]inventory.Item
}

// Option customizes the in-memory repository.
type Option func(*implRepository)

// WithClock overrides the clock used for creation and modification times.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) { r.now = now }
}

// New creates an in-process Repository. Listing returns items in insertion
// order. It is meant for local development and tests.
func New(l log.Logger, opts ...Option) repository.Repository {
	r := &implRepository{
		l:           l,
		now:         func() time.Time { return time.Now().UTC() },
		collections: make(map[inventory.Category]*collection),
	}
	for _, c := range inventory.Categories() {
		r.collections[c] = &collection{docs: make(map[string]inventory.Item)}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inventory/repository/memory.%s", method)
}
