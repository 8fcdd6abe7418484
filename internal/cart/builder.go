package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/internal/variants"
	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// DefaultQuantity is used when the caller does not supply a quantity.
const DefaultQuantity = 1

// BuildLineItem combines a product, the variant a selection resolved to
// (nil when the product sells without options), the selection itself and a
// quantity into a cart-ready line item. Pricing precedence is variant over
// base: the variant's override applies only when present and positive.
// Quantity is taken verbatim apart from defaulting non-positive input to 1;
// clamping to a maximum is a UI concern. The returned item carries a fresh
// id and an AddedAt of now; neither input is mutated.
func BuildLineItem(product *models.Product, variant *models.ProductVariant, selection types.AttributeSet, quantity int) models.CartItem {
	if quantity <= 0 {
		quantity = DefaultQuantity
	}

	attrs := selection
	if len(attrs) == 0 && variant != nil {
		attrs = variant.Attributes
	}
	snapshot := make(types.AttributeSet, len(attrs))
	copy(snapshot, attrs)

	return models.CartItem{
		ID:                   uuid.New(),
		ProductID:            product.ID,
		Title:                product.Title,
		Brand:                product.Brand,
		ImageURL:             product.ImageURL,
		Quantity:             quantity,
		OriginalPriceCents:   product.PriceCents,
		DiscountedPriceCents: variants.VariantPrice(product.PriceCents, variant),
		VariantSKU:           variants.GenerateSKU(product, variant),
		Variant:              snapshot,
		VariantDisplay:       variants.FormatDisplay(attrs),
		AddedAt:              time.Now(),
	}
}
