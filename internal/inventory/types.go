package inventory

import (
	"strings"
	"time"
)

// --- Categories ---

// Category identifies one of the four equipment classes. The value is also the
// name of the collection that stores it.
type Category string

const (
	CategoryUniforms Category = "uniformes"
	CategoryBoots    Category = "botas_dialectricas"
	CategoryHelmets  Category = "cascos"
	CategoryGoggles  Category = "googles"
)

// Categories returns every category in dashboard order.
func Categories() []Category {
	return []Category{CategoryUniforms, CategoryBoots, CategoryHelmets, CategoryGoggles}
}

// ParseCategory returns the Category named by s.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryUniforms, CategoryBoots, CategoryHelmets, CategoryGoggles:
		return true
	}
	return false
}

// Label is the plural, human-readable name used in activity messages.
func (c Category) Label() string {
	switch c {
	case CategoryUniforms:
		return "uniformes"
	case CategoryBoots:
		return "botas dieléctricas"
	case CategoryHelmets:
		return "cascos"
	case CategoryGoggles:
		return "lentes de seguridad"
	}
	return string(c)
}

// CodePrefixes lists the business-code prefixes used by the category.
func (c Category) CodePrefixes() []string {
	switch c {
	case CategoryUniforms:
		return []string{"PMC-", "PML-", "CAM-"}
	case CategoryBoots:
		return []string{"BDI-"}
	case CategoryHelmets:
		return []string{"CAS-"}
	case CategoryGoggles:
		return []string{"GOG-"}
	}
	return nil
}

// HasKnownPrefix reports whether code starts with one of the category's
// conventional prefixes. Codes are not rejected for failing this check.
func (c Category) HasKnownPrefix(code string) bool {
	for _, p := range c.CodePrefixes() {
		if strings.HasPrefix(strings.ToUpper(code), p) {
			return true
		}
	}
	return false
}

// --- Status ---

// Status is the stock status persisted as plain text.
type Status string

const (
	StatusAvailable   Status = "Disponible"
	StatusLowStock    Status = "Stock Bajo"
	StatusOutOfStock  Status = "Agotado"
	StatusMaintenance Status = "En Mantenimiento"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusLowStock, StatusOutOfStock, StatusMaintenance:
		return true
	}
	return false
}

// LowStockThreshold is the inclusive upper bound for "Stock Bajo".
const LowStockThreshold = 10

// --- Item Domain Model ---

// Stock holds the counters of an item and the values derived from them.
type Stock struct {
	StockInicial   int
	NuevosIngresos int
	Salidas        int
	TotalStock     int
	Estado         Status
}

// Item is a single inventory record of any category.
type Item struct {
	ID         string
	Category   Category
	Code       string
	Attributes Attributes
	Stock
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Name returns the descriptive name of the item (tipo for uniforms, nombre otherwise).
func (i Item) Name() string {
	if i.Attributes == nil {
		return ""
	}
	return i.Attributes.Name()
}

// --- UseCase Inputs ---

// ItemInput carries the operator-supplied fields of an item. Derived stock
// fields, id and timestamps are never taken from input.
type ItemInput struct {
	Category       Category   `json:"category"`
	Code           string     `json:"codigo"         validate:"required"`
	Attributes     Attributes `json:"-"              validate:"-"`
	StockInicial   int        `json:"stockInicial"   validate:"gte=0"`
	NuevosIngresos int        `json:"nuevosIngresos" validate:"gte=0"`
	Salidas        int        `json:"salidas"        validate:"gte=0"`
	Estado         Status     `json:"estado"         validate:"omitempty,estado"`
}

// SortField is a column the list endpoint can sort by.
type SortField string

const (
	SortByCode       SortField = "codigo"
	SortByTotalStock SortField = "totalStock"
	SortByStatus     SortField = "estado"
	SortByCreatedAt  SortField = "createdAt"
)

// ListInput selects and orders items of one category.
type ListInput struct {
	Category Category
	// Filters are attribute equality conditions, e.g. {"talla": "M"}.
	Filters map[string]string
	Estado  Status
	Search  string
	SortBy  SortField
	Desc    bool
}

// --- UseCase Outputs ---

// CollectionStats counts the records and distinct codes of a category.
type CollectionStats struct {
	Category    Category
	Count       int
	UniqueCodes int
}
