package http

import (
	"time"

	"ppe-inventory/internal/dashboard"
)

type statsResp struct {
	TotalArticulos       int     `json:"totalArticulos"`
	ArticulosCriticos    int     `json:"articulosCriticos"`
	ArticulosAgotados    int     `json:"articulosAgotados"`
	ArticulosDisponibles int     `json:"articulosDisponibles"`
	StockTotal           int     `json:"stockTotal"`
	ExactitudInventario  int     `json:"exactitudInventario"`
	OrdenesPendientes    int     `json:"ordenesPendientes"`
	OrdenesCompletadas   int     `json:"ordenesCompletadas"`
	TiempoRespuesta      float64 `json:"tiempoRespuesta"`
}

func newStatsResp(s dashboard.Stats) statsResp {
	return statsResp{
		TotalArticulos:       s.TotalArticulos,
		ArticulosCriticos:    s.ArticulosCriticos,
		ArticulosAgotados:    s.ArticulosAgotados,
		ArticulosDisponibles: s.ArticulosDisponibles,
		StockTotal:           s.StockTotal,
		ExactitudInventario:  s.ExactitudInventario,
		OrdenesPendientes:    s.OrdenesPendientes,
		OrdenesCompletadas:   s.OrdenesCompletadas,
		TiempoRespuesta:      s.TiempoRespuesta,
	}
}

type activityResp struct {
	Type     string    `json:"type"`
	Message  string    `json:"message"`
	Category string    `json:"category,omitempty"`
	Time     time.Time `json:"time"`
}

func newActivityResp(feed []dashboard.Activity) []activityResp {
	out := make([]activityResp, len(feed))
	for i, a := range feed {
		out[i] = activityResp{Type: string(a.Type), Message: a.Message, Category: string(a.Category), Time: a.At}
	}
	return out
}

type summaryResp struct {
	Stats    statsResp      `json:"stats"`
	Activity []activityResp `json:"activity"`
}

func (h *handler) newSummaryResp(s dashboard.Summary) summaryResp {
	return summaryResp{Stats: newStatsResp(s.Stats), Activity: newActivityResp(s.Activity)}
}
