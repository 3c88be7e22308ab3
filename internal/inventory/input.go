package inventory

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("estado", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	})
	return v
}

// ParseInput checks an ItemInput at the input boundary and returns it with
// surrounding whitespace trimmed. Only presence and counter signs are checked;
// attribute values are free-form.
func ParseInput(in ItemInput) (ItemInput, error) {
	if !in.Category.Valid() {
		return in, ErrUnknownCategory
	}

	fields := make(map[string]string)
	in.Code = strings.TrimSpace(in.Code)

	switch {
	case in.Attributes == nil:
		fields["attributes"] = "required"
	case in.Attributes.Category() != in.Category:
		fields["category"] = "mismatch"
	default:
		trimmed := make(map[string]string)
		for k, v := range in.Attributes.Fields() {
			trimmed[k] = strings.TrimSpace(v)
		}
		attrs, err := AttributesFromFields(in.Category, trimmed)
		if err != nil {
			return in, err
		}
		in.Attributes = attrs
		collectFieldErrors(validate.Struct(attrs), fields)
	}

	collectFieldErrors(validate.Struct(in), fields)

	if len(fields) > 0 {
		return in, &ValidationError{Fields: fields}
	}
	return in, nil
}

func collectFieldErrors(err error, fields map[string]string) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return
	}
	fields["input"] = err.Error()
}
