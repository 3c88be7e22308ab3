package http

import (
	"errors"
	"net/http"

	"ppe-inventory/internal/auth"
	pkgErrors "ppe-inventory/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "correo y contraseña son obligatorios")

// mapError renders sign-in failures with the operator-facing message of
// their kind.
func (h *handler) mapError(err error) error {
	if f, ok := auth.AsFailure(err); ok {
		switch f.Kind {
		case auth.FailureRateLimited:
			return pkgErrors.NewHTTPError(http.StatusTooManyRequests, f.Kind.Message())
		case auth.FailureDisabledAccount:
			return pkgErrors.NewHTTPError(http.StatusForbidden, f.Kind.Message())
		default:
			return pkgErrors.NewHTTPError(http.StatusUnauthorized, f.Kind.Message())
		}
	}

	switch {
	case errors.Is(err, auth.ErrProviderUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "el servicio de autenticación no está disponible")
	case errors.Is(err, auth.ErrNoSession), errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
