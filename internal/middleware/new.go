package middleware

import (
	"ppe-inventory/internal/auth"
	"ppe-inventory/pkg/log"
)

type Middleware struct {
	l           log.Logger
	auth        auth.UseCase
	environment string
}

func New(l log.Logger, authUC auth.UseCase, environment string) Middleware {
	return Middleware{
		l:           l,
		auth:        authUC,
		environment: environment,
	}
}
