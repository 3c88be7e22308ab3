package http

import (
	"errors"
	"net/http"

	"ppe-inventory/internal/inventory"
	pkgErrors "ppe-inventory/pkg/errors"
)

func (h *handler) mapError(err error) error {
	if errors.Is(err, inventory.ErrStoreUnavailable) {
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "no se pudieron cargar las estadísticas")
	}
	return pkgErrors.ErrInternalServerError
}
