package variants

import (
	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/enums"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// HasVariants reports whether a product requires the shopper to make a
// selection before it can be added to a cart.
func HasVariants(product *models.Product) bool {
	if product == nil {
		return false
	}
	return len(product.Variants) > 0 ||
		product.RequiresVariantSelection ||
		len(product.Sizes) > 0 ||
		len(product.Colors) > 0
}

// Match reports whether two attribute sets describe the same shopper-visible
// choice. Only size and color participate; stock and price metadata are
// deliberately ignored because selection identity is defined by what the
// shopper picked, not by inventory state.
func Match(a, b types.AttributeSet) bool {
	for _, key := range []string{string(enums.AttributeSize), string(enums.AttributeColor)} {
		av, _ := a.Get(key)
		bv, _ := b.Get(key)
		if av != bv {
			return false
		}
	}
	return true
}

// IsInStock reports whether the variant can satisfy minQuantity units.
// Untracked stock (nil) is assumed available; minQuantity values below one
// are treated as one.
func IsInStock(variant *models.ProductVariant, minQuantity int) bool {
	if variant == nil {
		return false
	}
	if minQuantity < 1 {
		minQuantity = 1
	}
	if variant.Stock == nil {
		return true
	}
	return *variant.Stock >= minQuantity
}

// VariantPrice returns the effective unit price in cents: the variant's
// override when present and positive, otherwise the base product price.
func VariantPrice(basePriceCents int, variant *models.ProductVariant) int {
	if variant != nil && variant.PriceCents != nil && *variant.PriceCents > 0 {
		return *variant.PriceCents
	}
	return basePriceCents
}
