package inventory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrStoreUnavailable = errors.New("inventory store unavailable")
	ErrUnknownCategory  = errors.New("unknown inventory category")
	ErrValidation       = errors.New("invalid item")
)

// ValidationError lists the offending fields of an ItemInput.
// errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	// Fields maps the field name to the failed rule.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
