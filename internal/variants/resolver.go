package variants

import (
	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// Resolve matches a selection against the catalog and returns the variant
// whose attributes exactly equal it. A selection that does not yet cover
// every attribute name derivable from the catalog resolves to nil without
// attempting a match, so callers can distinguish "incomplete" from
// "complete but unavailable". A complete selection with no exact match also
// returns nil; that is an out-of-combination state, not an error.
//
// When a malformed catalog carries duplicate attribute combinations the
// first variant in catalog order wins.
func Resolve(catalog []models.ProductVariant, selection types.AttributeSet) *models.ProductVariant {
	options := ExtractOptions(catalog)
	if !IsSelectionComplete(selection, OptionNames(options)) {
		return nil
	}
	for i := range catalog {
		if catalog[i].Attributes.Equal(selection) {
			return &catalog[i]
		}
	}
	return nil
}
