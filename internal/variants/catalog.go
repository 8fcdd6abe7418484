package variants

import (
	"github.com/lumora-labs/storefront-backend/pkg/db/models"
)

// OptionValue is one selectable value for an attribute. DisplayName is an
// optional override; when empty the raw value is what the UI renders.
type OptionValue struct {
	Value       string `json:"value"`
	DisplayName string `json:"display_name,omitempty"`
}

// AttributeOption is one selectable dimension derived from the variant
// catalog, holding the distinct values observed across all variants in
// order of first appearance.
type AttributeOption struct {
	Name   string        `json:"name"`
	Values []OptionValue `json:"values"`
}

// ExtractOptions normalizes a raw variant list into one AttributeOption per
// distinct attribute name. Value order follows first appearance across the
// catalog so repeated calls never reorder choice chips. An empty catalog,
// or variants with no attributes, yield an empty option list.
func ExtractOptions(catalog []models.ProductVariant) []AttributeOption {
	options := []AttributeOption{}
	index := map[string]int{}
	seen := map[string]map[string]bool{}

	for _, variant := range catalog {
		for _, attr := range variant.Attributes {
			i, ok := index[attr.Name]
			if !ok {
				i = len(options)
				index[attr.Name] = i
				options = append(options, AttributeOption{Name: attr.Name})
				seen[attr.Name] = map[string]bool{}
			}
			if seen[attr.Name][attr.Value] {
				continue
			}
			seen[attr.Name][attr.Value] = true
			options[i].Values = append(options[i].Values, OptionValue{Value: attr.Value})
		}
	}
	return options
}

// OptionNames returns the attribute names of the options in catalog order.
func OptionNames(options []AttributeOption) []string {
	names := make([]string, 0, len(options))
	for _, option := range options {
		names = append(names, option.Name)
	}
	return names
}
