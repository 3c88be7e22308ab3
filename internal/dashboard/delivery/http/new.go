package http

import (
	"ppe-inventory/internal/dashboard"
	"ppe-inventory/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dashboard.UseCase
}

// New creates the HTTP handler for the dashboard.
func New(l log.Logger, uc dashboard.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
