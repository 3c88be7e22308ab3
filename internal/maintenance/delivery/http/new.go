package http

import (
	"ppe-inventory/internal/maintenance"
	"ppe-inventory/pkg/log"
)

type handler struct {
	l  log.Logger
	uc maintenance.UseCase
}

// New creates the HTTP handler for maintenance actions.
func New(l log.Logger, uc maintenance.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
