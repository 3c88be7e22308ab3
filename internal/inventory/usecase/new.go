package usecase

import (
	"ppe-inventory/internal/inventory"
	"ppe-inventory/internal/inventory/repository"
	"ppe-inventory/pkg/log"
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new inventory UseCase backed by repo.
func New(repo repository.Repository, l log.Logger) inventory.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
