package http

import (
	"errors"
	"net/http"

	"ppe-inventory/internal/inventory"
	"ppe-inventory/internal/maintenance"
	pkgErrors "ppe-inventory/pkg/errors"
)

// mapError translates maintenance errors. A sweep that stopped halfway is a
// 500 whose data is the partial report, so the operator sees what was removed.
func (h *handler) mapError(err error) error {
	var perr *maintenance.PartialPurgeError
	switch {
	case errors.As(err, &perr):
		return pkgErrors.NewHTTPErrorWithData(http.StatusInternalServerError,
			"la limpieza de duplicados se detuvo por un error",
			partialResp{
				Report:         newReportResp(perr.Report),
				FailedCategory: string(perr.Category),
				FailedID:       perr.ID,
			})
	case errors.Is(err, inventory.ErrStoreUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "el inventario no está disponible, intenta de nuevo")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
