package dashboard

import (
	"time"

	"ppe-inventory/internal/inventory"
)

// Stats is the fleet-wide snapshot shown on the dashboard.
type Stats struct {
	TotalArticulos       int
	ArticulosCriticos    int // totalStock <= 10, agotados included
	ArticulosAgotados    int // totalStock <= 0
	ArticulosDisponibles int
	StockTotal           int
	ExactitudInventario  int
	OrdenesPendientes    int
	OrdenesCompletadas   int
	// TiempoRespuesta is how long the collection reads took, in seconds.
	TiempoRespuesta float64
}

type ActivityType string

const (
	ActivityWarning ActivityType = "warning"
	ActivityInfo    ActivityType = "info"
)

// MaxActivities caps the recent-activity feed.
const MaxActivities = 5

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type     ActivityType
	Message  string
	Category inventory.Category // empty for the inventory total entry
	At       time.Time
}

// Summary is everything the dashboard screen needs, computed from one read.
type Summary struct {
	Stats    Stats
	Activity []Activity
}
