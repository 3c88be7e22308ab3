package usecase

import (
	"time"

	"ppe-inventory/internal/dashboard"
	"ppe-inventory/internal/inventory"
	"ppe-inventory/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	inventory inventory.UseCase
	now       func() time.Time
}

// New creates the dashboard UseCase. It only reads.
func New(l log.Logger, inv inventory.UseCase) dashboard.UseCase {
	return &implUseCase{
		l:         l,
		inventory: inv,
		now:       time.Now,
	}
}
