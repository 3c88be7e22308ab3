package firestore

import (
	"math"
	"strconv"
	"strings"
	"time"

	"ppe-inventory/internal/inventory"
)

// Persisted field names that are not attributes.
const (
	fieldStockInicial      = "stockInicial"
	fieldNuevosIngresos    = "nuevosIngresos"
	fieldSalidas           = "salidas"
	fieldTotalStock        = "totalStock"
	fieldEstado            = "estado"
	fieldFechaCreacion     = "fechaCreacion"
	fieldFechaModificacion = "fechaModificacion"
)

// encode builds the document body of an item.
func encode(code string, attrs inventory.Attributes, stock inventory.Stock, createdAt, updatedAt time.Time) map[string]interface{} {
	doc := map[string]interface{}{
		inventory.FieldCodigo:  code,
		fieldStockInicial:      int64(stock.StockInicial),
		fieldNuevosIngresos:    int64(stock.NuevosIngresos),
		fieldSalidas:           int64(stock.Salidas),
		fieldTotalStock:        int64(stock.TotalStock),
		fieldEstado:            string(stock.Estado),
		fieldFechaCreacion:     createdAt,
		fieldFechaModificacion: updatedAt,
	}
	if attrs != nil {
		for k, v := range attrs.Fields() {
			doc[k] = v
		}
	}
	return doc
}

// decode maps a stored document to an Item. Documents written by other
// clients may hold counters as floats or strings, and may lack timestamps.
func decode(c inventory.Category, id string, data map[string]interface{}) (inventory.Item, error) {
	fields := make(map[string]string)
	for _, name := range inventory.AttributeFields(c) {
		fields[name] = asString(data[name])
	}
	attrs, err := inventory.AttributesFromFields(c, fields)
	if err != nil {
		return inventory.Item{}, err
	}

	return inventory.Item{
		ID:         id,
		Category:   c,
		Code:       asString(data[inventory.FieldCodigo]),
		Attributes: attrs,
		Stock: inventory.Stock{
			StockInicial:   asInt(data[fieldStockInicial]),
			NuevosIngresos: asInt(data[fieldNuevosIngresos]),
			Salidas:        asInt(data[fieldSalidas]),
			TotalStock:     asInt(data[fieldTotalStock]),
			Estado:         inventory.Status(asString(data[fieldEstado])),
		},
		CreatedAt: asTime(data[fieldFechaCreacion]),
		UpdatedAt: asTime(data[fieldFechaModificacion]),
	}, nil
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

// asInt reads a counter. Missing or unparseable values are 0.
func asInt(v interface{}) int {
	switch t := v.(type) {
	case int64:
		return int(t)
	case int:
		return t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		return int(t)
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f)
		}
	}
	return 0
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
