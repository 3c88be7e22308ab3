package dashboard

import (
	"fmt"
	"math"
	"time"

	"ppe-inventory/internal/inventory"
)

// ComputeStats aggregates a snapshot. Totals are recomputed from the counters
// and never clamped, so StockTotal may be negative.
func ComputeStats(snap inventory.Snapshot) Stats {
	var s Stats
	for _, c := range inventory.Categories() {
		for _, item := range snap[c] {
			total, _ := inventory.DeriveStatus(item.StockInicial, item.NuevosIngresos, item.Salidas, item.Estado)
			s.TotalArticulos++
			s.StockTotal += total
			if total <= inventory.LowStockThreshold {
				s.ArticulosCriticos++
			}
			if total <= 0 {
				s.ArticulosAgotados++
			}
		}
	}

	s.ArticulosDisponibles = s.TotalArticulos - s.ArticulosAgotados
	s.ExactitudInventario = 100
	if s.TotalArticulos > 0 {
		s.ExactitudInventario = int(math.Round(100 * float64(s.ArticulosDisponibles) / float64(s.TotalArticulos)))
	}
	s.OrdenesPendientes = s.ArticulosCriticos
	s.OrdenesCompletadas = s.ArticulosDisponibles
	return s
}

// BuildActivity produces the recent-activity feed: a low-stock advisory per
// category in dashboard order, then the inventory total, capped at
// MaxActivities with advisories first.
func BuildActivity(snap inventory.Snapshot, now time.Time) []Activity {
	feed := make([]Activity, 0, MaxActivities)
	total := 0
	for _, c := range inventory.Categories() {
		low := 0
		for _, item := range snap[c] {
			stock, _ := inventory.DeriveStatus(item.StockInicial, item.NuevosIngresos, item.Salidas, item.Estado)
			if stock > 0 && stock <= inventory.LowStockThreshold {
				low++
			}
		}
		total += len(snap[c])
		if low > 0 {
			feed = append(feed, Activity{
				Type:     ActivityWarning,
				Message:  fmt.Sprintf("%d %s con stock bajo", low, c.Label()),
				Category: c,
				At:       now,
			})
		}
	}

	feed = append(feed, Activity{
		Type:    ActivityInfo,
		Message: fmt.Sprintf("Inventario actualizado - %d artículos totales", total),
		At:      now,
	})

	if len(feed) > MaxActivities {
		feed = feed[:MaxActivities]
	}
	return feed
}
