package inventory

// DeriveStatus computes the total stock of an item and its status.
//
// The total is never clamped, so inconsistent counters yield a negative total
// (reported as Agotado). Stock-derived statuses always follow the total;
// En Mantenimiento is only kept while the total stays above the low-stock
// threshold and is never produced here.
func DeriveStatus(stockInicial, nuevosIngresos, salidas int, current Status) (int, Status) {
	total := stockInicial + nuevosIngresos - salidas

	switch {
	case total <= 0:
		return total, StatusOutOfStock
	case total <= LowStockThreshold:
		return total, StatusLowStock
	}

	switch current {
	case StatusMaintenance, StatusAvailable:
		return total, current
	default:
		// Agotado / Stock Bajo are stale once stock recovered; unknown values too.
		return total, StatusAvailable
	}
}

// Normalize recomputes the derived stock fields of an item from its counters.
// Persisted totals are never trusted.
func Normalize(item Item) Item {
	item.TotalStock, item.Estado = DeriveStatus(item.StockInicial, item.NuevosIngresos, item.Salidas, item.Estado)
	return item
}

// Normalize returns the stock an input will be persisted with.
func (in ItemInput) Normalize() Stock {
	total, estado := DeriveStatus(in.StockInicial, in.NuevosIngresos, in.Salidas, in.Estado)
	return Stock{
		StockInicial:   in.StockInicial,
		NuevosIngresos: in.NuevosIngresos,
		Salidas:        in.Salidas,
		TotalStock:     total,
		Estado:         estado,
	}
}
