package inventory

// Attributes is the category-specific part of an item. It is a closed set:
// UniformAttributes, BootAttributes, HelmetAttributes and GoggleAttributes.
type Attributes interface {
	Category() Category
	// Name is the descriptive name shown next to the code.
	Name() string
	// Fields returns the persisted field names and values.
	Fields() map[string]string
	isAttributes()
}

// Persisted field names.
const (
	FieldCodigo = "codigo"
	FieldTipo   = "tipo"
	FieldNombre = "nombre"
	FieldColor  = "color"
	FieldTalla  = "talla"
	FieldSexo   = "sexo"
)

// UniformAttributes describe a garment (PMC/PML/CAM codes).
type UniformAttributes struct {
	Tipo  string `json:"tipo"  validate:"required"`
	Color string `json:"color" validate:"required"`
	Talla string `json:"talla" validate:"required"`
	Sexo  string `json:"sexo"  validate:"required"`
}

func (UniformAttributes) Category() Category { return CategoryUniforms }
func (a UniformAttributes) Name() string     { return a.Tipo }
func (a UniformAttributes) Fields() map[string]string {
	return map[string]string{FieldTipo: a.Tipo, FieldColor: a.Color, FieldTalla: a.Talla, FieldSexo: a.Sexo}
}
func (UniformAttributes) isAttributes() {}

// BootAttributes describe a pair of dielectric boots.
type BootAttributes struct {
	Nombre string `json:"nombre" validate:"required"`
	Color  string `json:"color"  validate:"required"`
	Talla  string `json:"talla"  validate:"required"`
}

func (BootAttributes) Category() Category { return CategoryBoots }
func (a BootAttributes) Name() string     { return a.Nombre }
func (a BootAttributes) Fields() map[string]string {
	return map[string]string{FieldNombre: a.Nombre, FieldColor: a.Color, FieldTalla: a.Talla}
}
func (BootAttributes) isAttributes() {}

// HelmetAttributes describe a helmet model.
type HelmetAttributes struct {
	Nombre string `json:"nombre" validate:"required"`
	Color  string `json:"color"  validate:"required"`
}

func (HelmetAttributes) Category() Category { return CategoryHelmets }
func (a HelmetAttributes) Name() string     { return a.Nombre }
func (a HelmetAttributes) Fields() map[string]string {
	return map[string]string{FieldNombre: a.Nombre, FieldColor: a.Color}
}
func (HelmetAttributes) isAttributes() {}

// GoggleAttributes describe a safety goggle model.
type GoggleAttributes struct {
	Nombre string `json:"nombre" validate:"required"`
	Color  string `json:"color"  validate:"required"`
}

func (GoggleAttributes) Category() Category { return CategoryGoggles }
func (a GoggleAttributes) Name() string     { return a.Nombre }
func (a GoggleAttributes) Fields() map[string]string {
	return map[string]string{FieldNombre: a.Nombre, FieldColor: a.Color}
}
func (GoggleAttributes) isAttributes() {}

// AttributeFields lists the attribute field names a category stores.
func AttributeFields(c Category) []string {
	switch c {
	case CategoryUniforms:
		return []string{FieldTipo, FieldColor, FieldTalla, FieldSexo}
	case CategoryBoots:
		return []string{FieldNombre, FieldColor, FieldTalla}
	case CategoryHelmets, CategoryGoggles:
		return []string{FieldNombre, FieldColor}
	}
	return nil
}

// AttributesFromFields builds the Attributes of category c from persisted or
// submitted fields. Missing fields become empty strings.
func AttributesFromFields(c Category, f map[string]string) (Attributes, error) {
	switch c {
	case CategoryUniforms:
		return UniformAttributes{Tipo: f[FieldTipo], Color: f[FieldColor], Talla: f[FieldTalla], Sexo: f[FieldSexo]}, nil
	case CategoryBoots:
		return BootAttributes{Nombre: f[FieldNombre], Color: f[FieldColor], Talla: f[FieldTalla]}, nil
	case CategoryHelmets:
		return HelmetAttributes{Nombre: f[FieldNombre], Color: f[FieldColor]}, nil
	case CategoryGoggles:
		return GoggleAttributes{Nombre: f[FieldNombre], Color: f[FieldColor]}, nil
	}
	return nil, ErrUnknownCategory
}
