package variants

import (
	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// IsOptionAvailable reports whether choosing value for the named attribute,
// on top of the current partial selection, still permits at least one
// purchasable variant. A variant qualifies when it carries name=value, is
// compatible with every other already-selected attribute (it either lacks
// the key or matches it), and is in stock or has untracked stock.
//
// Availability is selection-dependent, so this must be evaluated per
// candidate value on each render: picking "Red" can make "XXL" unavailable
// even though XXL exists for other colors.
func IsOptionAvailable(catalog []models.ProductVariant, selection types.AttributeSet, name, value string) bool {
	for i := range catalog {
		variant := &catalog[i]
		got, ok := variant.Attributes.Get(name)
		if !ok || got != value {
			continue
		}
		if !compatibleWithSelection(variant, selection, name) {
			continue
		}
		if IsInStock(variant, 1) {
			return true
		}
	}
	return false
}

func compatibleWithSelection(variant *models.ProductVariant, selection types.AttributeSet, skip string) bool {
	for _, chosen := range selection {
		if chosen.Name == skip {
			continue
		}
		got, ok := variant.Attributes.Get(chosen.Name)
		if ok && got != chosen.Value {
			return false
		}
	}
	return true
}
