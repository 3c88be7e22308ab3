package http

import (
	"strings"
	"time"

	"ppe-inventory/internal/inventory"
)

// --- Request DTOs ---

// itemReq is the body of add and update. Only the attribute fields of the
// path category are used.
type itemReq struct {
	Codigo         string `json:"codigo"`
	Tipo           string `json:"tipo"`
	Nombre         string `json:"nombre"`
	Color          string `json:"color"`
	Talla          string `json:"talla"`
	Sexo           string `json:"sexo"`
	StockInicial   int    `json:"stockInicial"`
	NuevosIngresos int    `json:"nuevosIngresos"`
	Salidas        int    `json:"salidas"`
	Estado         string `json:"estado"`
}

func (r itemReq) toInput(c inventory.Category) (inventory.ItemInput, error) {
	attrs, err := inventory.AttributesFromFields(c, map[string]string{
		inventory.FieldTipo:   r.Tipo,
		inventory.FieldNombre: r.Nombre,
		inventory.FieldColor:  r.Color,
		inventory.FieldTalla:  r.Talla,
		inventory.FieldSexo:   r.Sexo,
	})
	if err != nil {
		return inventory.ItemInput{}, err
	}
	return inventory.ItemInput{
		Category:       c,
		Code:           r.Codigo,
		Attributes:     attrs,
		StockInicial:   r.StockInicial,
		NuevosIngresos: r.NuevosIngresos,
		Salidas:        r.Salidas,
		Estado:         inventory.Status(strings.TrimSpace(r.Estado)),
	}, nil
}

// listReq holds the query of the list endpoint. Attribute filters are read
// separately because their names depend on the category.
type listReq struct {
	Estado string `form:"estado"`
	Search string `form:"q"`
	Sort   string `form:"sort"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

func (r listReq) toInput(c inventory.Category, filters map[string]string) inventory.ListInput {
	return inventory.ListInput{
		Category: c,
		Filters:  filters,
		Estado:   inventory.Status(r.Estado),
		Search:   r.Search,
		SortBy:   inventory.SortField(r.Sort),
		Desc:     r.Order == "desc",
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID                string    `json:"id"`
	Category          string    `json:"category"`
	Codigo            string    `json:"codigo"`
	Tipo              string    `json:"tipo,omitempty"`
	Nombre            string    `json:"nombre,omitempty"`
	Color             string    `json:"color,omitempty"`
	Talla             string    `json:"talla,omitempty"`
	Sexo              string    `json:"sexo,omitempty"`
	StockInicial      int       `json:"stockInicial"`
	NuevosIngresos    int       `json:"nuevosIngresos"`
	Salidas           int       `json:"salidas"`
	TotalStock        int       `json:"totalStock"`
	Estado            string    `json:"estado"`
	FechaCreacion     time.Time `json:"fechaCreacion"`
	FechaModificacion time.Time `json:"fechaModificacion"`
}

func newItemResp(item inventory.Item) itemResp {
	resp := itemResp{
		ID:                item.ID,
		Category:          string(item.Category),
		Codigo:            item.Code,
		StockInicial:      item.StockInicial,
		NuevosIngresos:    item.NuevosIngresos,
		Salidas:           item.Salidas,
		TotalStock:        item.TotalStock,
		Estado:            string(item.Estado),
		FechaCreacion:     item.CreatedAt,
		FechaModificacion: item.UpdatedAt,
	}
	if item.Attributes != nil {
		f := item.Attributes.Fields()
		resp.Tipo = f[inventory.FieldTipo]
		resp.Nombre = f[inventory.FieldNombre]
		resp.Color = f[inventory.FieldColor]
		resp.Talla = f[inventory.FieldTalla]
		resp.Sexo = f[inventory.FieldSexo]
	}
	return resp
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(items []inventory.Item) listResp {
	out := make([]itemResp, len(items))
	for i, item := range items {
		out[i] = newItemResp(item)
	}
	return listResp{Items: out, Total: len(out)}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(item inventory.Item) detailResp {
	return detailResp{Item: newItemResp(item)}
}

type statsResp struct {
	Category    string `json:"category"`
	Count       int    `json:"count"`
	UniqueCodes int    `json:"uniqueCodes"`
}

func (h *handler) newStatsResp(s inventory.CollectionStats) statsResp {
	return statsResp{Category: string(s.Category), Count: s.Count, UniqueCodes: s.UniqueCodes}
}
