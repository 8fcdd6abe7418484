package variants

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/enums"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

const (
	// DefaultDisplay is rendered when a product has no selectable attributes.
	DefaultDisplay = "Default"

	// SKUPrefix leads every synthesized SKU.
	SKUPrefix = "PROD"
	// MissingToken stands in for an absent size or color in synthesized SKUs.
	MissingToken = "NA"

	colorTokenLen = 3
)

// Shopper prompts keyed by which option dimensions the product exposes.
const (
	PromptSizeAndColor = "Select Size & Color"
	PromptSize         = "Select Size"
	PromptColor        = "Select Color"
	PromptOptions      = "Select Options"
)

// wellKnownKeys render with canonical capitalization and always lead the
// display string, in this order. Custom keys follow in insertion order.
var wellKnownKeys = []struct {
	key   string
	label string
}{
	{string(enums.AttributeSize), "Size"},
	{string(enums.AttributeColor), "Color"},
}

// FormatDisplay renders a selection or variant attribute set as a
// human-readable descriptor, e.g. "Size: M, Color: Blue". Recognized keys
// come first with canonical labels; custom keys render lower-cased in the
// order they were introduced. An empty set renders as "Default".
func FormatDisplay(attrs types.AttributeSet) string {
	if len(attrs) == 0 {
		return DefaultDisplay
	}

	parts := make([]string, 0, len(attrs))
	for _, known := range wellKnownKeys {
		if value, ok := attrs.Get(known.key); ok {
			parts = append(parts, fmt.Sprintf("%s: %s", known.label, value))
		}
	}
	for _, attr := range attrs {
		if isWellKnownKey(attr.Name) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(attr.Name), attr.Value))
	}
	return strings.Join(parts, ", ")
}

func isWellKnownKey(name string) bool {
	for _, known := range wellKnownKeys {
		if known.key == name {
			return true
		}
	}
	return false
}

// GenerateSKU returns the variant's explicit SKU when the catalog supplies
// one; otherwise it synthesizes PROD-<product>-<size>-<color>-<suffix>. The
// synthesized form is stable only when the variant carries an identifier;
// otherwise each call mints a fresh suffix. Uniqueness over reproducibility
// is intentional, the value stands in for a backend-issued SKU.
func GenerateSKU(product *models.Product, variant *models.ProductVariant) string {
	if variant != nil && variant.SKU != nil && *variant.SKU != "" {
		return *variant.SKU
	}

	productToken := MissingToken
	if product != nil && product.ID != uuid.Nil {
		productToken = product.ID.String()
	}

	sizeToken := MissingToken
	colorToken := MissingToken
	suffix := ""
	if variant != nil {
		if size, ok := variant.Attributes.Get(string(enums.AttributeSize)); ok && size != "" {
			sizeToken = strings.ToUpper(size)
		}
		if color, ok := variant.Attributes.Get(string(enums.AttributeColor)); ok && color != "" {
			colorToken = colorPrefix(color)
		}
		switch {
		case variant.VariantCode != nil && *variant.VariantCode != "":
			suffix = *variant.VariantCode
		case variant.ID != uuid.Nil:
			suffix = variant.ID.String()
		}
	}
	if suffix == "" {
		suffix = uuid.NewString()
	}

	return fmt.Sprintf("%s-%s-%s-%s-%s", SKUPrefix, productToken, sizeToken, colorToken, suffix)
}

func colorPrefix(color string) string {
	runes := []rune(strings.ToUpper(color))
	if len(runes) > colorTokenLen {
		runes = runes[:colorTokenLen]
	}
	return string(runes)
}

// SelectionPrompt picks the call-to-action label for a product based on
// which option dimensions it exposes.
func SelectionPrompt(product *models.Product) string {
	if product == nil {
		return PromptOptions
	}
	hasSizes := len(product.Sizes) > 0
	hasColors := len(product.Colors) > 0
	switch {
	case hasSizes && hasColors:
		return PromptSizeAndColor
	case hasSizes:
		return PromptSize
	case hasColors:
		return PromptColor
	default:
		return PromptOptions
	}
}
