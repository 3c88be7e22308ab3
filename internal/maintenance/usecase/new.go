package usecase

import (
	"ppe-inventory/internal/inventory"
	"ppe-inventory/internal/maintenance"
	"ppe-inventory/pkg/log"
)

type implUseCase struct {
	l               log.Logger
	inventory       inventory.UseCase
	orderByCreation bool
}

// New creates the maintenance UseCase. With orderByCreation set, records are
// ordered by creation time before the first-seen rule is applied, so the
// oldest record of each code survives.
func New(l log.Logger, inv inventory.UseCase, orderByCreation bool) maintenance.UseCase {
	return &implUseCase{
		l:               l,
		inventory:       inv,
		orderByCreation: orderByCreation,
	}
}
