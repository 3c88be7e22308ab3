package http

import (
	"errors"
	"net/http"

	"ppe-inventory/internal/inventory"
	pkgErrors "ppe-inventory/pkg/errors"
)

var (
	errUnknownCategory = pkgErrors.NewHTTPError(http.StatusNotFound, "categoría desconocida")
	errItemNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "artículo no encontrado")
	errStoreDown       = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "el inventario no está disponible, intenta de nuevo")
)

// mapError translates inventory errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var verr *inventory.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkgErrors.NewHTTPErrorWithData(http.StatusBadRequest, "datos del artículo inválidos", verr.Fields)
	case errors.Is(err, inventory.ErrUnknownCategory):
		return errUnknownCategory
	case errors.Is(err, inventory.ErrItemNotFound):
		return errItemNotFound
	case errors.Is(err, inventory.ErrStoreUnavailable):
		return errStoreDown
	default:
		return pkgErrors.ErrInternalServerError
	}
}
