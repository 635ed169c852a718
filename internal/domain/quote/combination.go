package quote

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	// KeySeparator joins axis values into a machine combination key.
	KeySeparator = "__"
	// LabelSeparator joins axis values into a display label.
	LabelSeparator = " - "
)

var (
	ErrEmptyVariantName   = errors.New("quote: variant type name cannot be empty")
	ErrEmptyVariantValues = errors.New("quote: variant type needs at least one value")
)

// VariantType is a user-declared variant axis, e.g. "Color" with
// values ["Black", "White"]. Axis declaration order is significant:
// it drives combination key and label order.
type VariantType struct {
	ID     uuid.UUID
	Name   string
	Values []string
}

// NewVariantType creates a variant axis. Values are trimmed and blank
// entries dropped; an axis with no usable values is rejected so the
// authoring layer can silently skip it.
func NewVariantType(name string, values []string) (*VariantType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyVariantName
	}

	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrEmptyVariantValues
	}

	return &VariantType{
		ID:     uuid.New(),
		Name:   name,
		Values: cleaned,
	}, nil
}

// ProductAttribute is one resolved axis assignment within a combination.
type ProductAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Combination is one sellable variant configuration produced from the
// cartesian product of the declared axes.
type Combination struct {
	Key        string
	Label      string
	Attributes []ProductAttribute
}

// GenerateCombinations expands the given axes into the full cartesian
// product of combinations, row-major in axis declaration order. Zero
// axes yield an empty result (the no-variant product path). For a
// single axis the key is the value itself.
func GenerateCombinations(axes []VariantType) []Combination {
	if len(axes) == 0 {
		return nil
	}

	total := 1
	for _, axis := range axes {
		total *= len(axis.Values)
	}

	result := make([]Combination, 0, total)
	attrs := make([]ProductAttribute, 0, len(axes))
	parts := make([]string, 0, len(axes))
	expandCombinations(axes, 0, attrs, parts, &result)
	return result
}

// expandCombinations walks the axes depth-first. Base case: index ==
// len(axes), at which point the accumulated parts form one combination.
func expandCombinations(axes []VariantType, index int, attrs []ProductAttribute, parts []string, out *[]Combination) {
	if index == len(axes) {
		combination := Combination{
			Key:        strings.Join(parts, KeySeparator),
			Label:      strings.Join(parts, LabelSeparator),
			Attributes: append([]ProductAttribute(nil), attrs...),
		}
		*out = append(*out, combination)
		return
	}

	axis := axes[index]
	for _, value := range axis.Values {
		attrs = append(attrs, ProductAttribute{Name: axis.Name, Value: value})
		parts = append(parts, value)

		expandCombinations(axes, index+1, attrs, parts, out)

		attrs = attrs[:len(attrs)-1]
		parts = parts[:len(parts)-1]
	}
}
