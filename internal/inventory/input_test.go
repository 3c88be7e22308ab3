package inventory_test

import (
	"errors"
	"testing"

	"ppe-inventory/internal/inventory"
)

func TestParseInput(t *testing.T) {
	valid := inventory.ItemInput{
		Category:     inventory.CategoryUniforms,
		Code:         "  PMC-001 ",
		Attributes:   inventory.UniformAttributes{Tipo: "Camisa", Color: " Naranja ", Talla: "M", Sexo: "Hombre"},
		StockInicial: 10,
	}

	t.Run("Valid Input Is Trimmed", func(t *testing.T) {
		got, err := inventory.ParseInput(valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Code != "PMC-001" {
			t.Errorf("expected trimmed code, got %q", got.Code)
		}
		if got.Attributes.Fields()[inventory.FieldColor] != "Naranja" {
			t.Errorf("expected trimmed color, got %q", got.Attributes.Fields()[inventory.FieldColor])
		}
	})

	t.Run("Missing Code And Attribute", func(t *testing.T) {
		in := valid
		in.Code = " "
		in.Attributes = inventory.UniformAttributes{Tipo: "Camisa", Color: "Negro", Talla: "M"}
		_, err := inventory.ParseInput(in)
		if !errors.Is(err, inventory.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		var verr *inventory.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if verr.Fields["codigo"] != "required" || verr.Fields["sexo"] != "required" {
			t.Errorf("unexpected field errors %v", verr.Fields)
		}
	})

	t.Run("Negative Counter", func(t *testing.T) {
		in := valid
		in.Salidas = -1
		_, err := inventory.ParseInput(in)
		var verr *inventory.ValidationError
		if !errors.As(err, &verr) || verr.Fields["salidas"] != "gte" {
			t.Errorf("expected salidas gte error, got %v", err)
		}
	})

	t.Run("Unknown Estado", func(t *testing.T) {
		in := valid
		in.Estado = "Roto"
		_, err := inventory.ParseInput(in)
		var verr *inventory.ValidationError
		if !errors.As(err, &verr) || verr.Fields["estado"] != "estado" {
			t.Errorf("expected estado error, got %v", err)
		}
	})

	t.Run("Known Estado", func(t *testing.T) {
		in := valid
		in.Estado = inventory.StatusMaintenance
		if _, err := inventory.ParseInput(in); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Attributes Of Other Category", func(t *testing.T) {
		in := valid
		in.Attributes = inventory.HelmetAttributes{Nombre: "Casco", Color: "Blanco"}
		_, err := inventory.ParseInput(in)
		var verr *inventory.ValidationError
		if !errors.As(err, &verr) || verr.Fields["category"] != "mismatch" {
			t.Errorf("expected category mismatch, got %v", err)
		}
	})

	t.Run("Missing Attributes", func(t *testing.T) {
		in := valid
		in.Attributes = nil
		_, err := inventory.ParseInput(in)
		if !errors.Is(err, inventory.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("Unknown Category", func(t *testing.T) {
		in := valid
		in.Category = "guantes"
		if _, err := inventory.ParseInput(in); !errors.Is(err, inventory.ErrUnknownCategory) {
			t.Errorf("expected ErrUnknownCategory, got %v", err)
		}
	})

	t.Run("Unprefixed Code Accepted", func(t *testing.T) {
		in := valid
		in.Code = "X-1"
		if _, err := inventory.ParseInput(in); err != nil {
			t.Errorf("code prefix must not be enforced: %v", err)
		}
		if inventory.CategoryUniforms.HasKnownPrefix("X-1") {
			t.Errorf("X-1 is not a uniform prefix")
		}
		if !inventory.CategoryHelmets.HasKnownPrefix("cas-014") {
			t.Errorf("prefix check should be case-insensitive")
		}
	})
}

func TestAttributesFromFields(t *testing.T) {
	for _, c := range inventory.Categories() {
		t.Run(string(c), func(t *testing.T) {
			fields := map[string]string{}
			for _, f := range inventory.AttributeFields(c) {
				fields[f] = "v-" + f
			}
			attrs, err := inventory.AttributesFromFields(c, fields)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if attrs.Category() != c {
				t.Errorf("expected category %s, got %s", c, attrs.Category())
			}
			got := attrs.Fields()
			for k, v := range fields {
				if got[k] != v {
					t.Errorf("field %s: expected %q, got %q", k, v, got[k])
				}
			}
		})
	}

	if _, err := inventory.AttributesFromFields("guantes", nil); !errors.Is(err, inventory.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}
