package http

import (
	"ppe-inventory/internal/inventory"
	"ppe-inventory/pkg/log"
)

type handler struct {
	l  log.Logger
	uc inventory.UseCase
}

// New creates the HTTP handler for the inventory domain.
func New(l log.Logger, uc inventory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
