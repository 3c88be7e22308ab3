package http

import (
	"ppe-inventory/internal/auth"
	"ppe-inventory/pkg/log"
)

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates the HTTP handler for operator sessions.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
