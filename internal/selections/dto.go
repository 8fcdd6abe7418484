package selections

import (
	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// OptionValueView is one choice chip: the raw value, whether the shopper has
// it selected, and whether picking it still permits a purchasable variant
// given the rest of the current selection.
type OptionValueView struct {
	Value       string `json:"value"`
	DisplayName string `json:"display_name,omitempty"`
	Selected    bool   `json:"selected"`
	Available   bool   `json:"available"`
}

// OptionView is one selectable dimension with its annotated values.
type OptionView struct {
	Name   string            `json:"name"`
	Values []OptionValueView `json:"values"`
}

// ResolvedVariantView describes the variant a complete selection maps to.
type ResolvedVariantView struct {
	ID         uuid.UUID `json:"id"`
	SKU        string    `json:"sku"`
	PriceCents int       `json:"price_cents"`
	Stock      *int      `json:"stock,omitempty"`
	InStock    bool      `json:"in_stock"`
	Display    string    `json:"display"`
}

// SelectionView is the full render state for a product's selection UI.
// Complete and Unavailable are distinct flags: a selection can cover every
// attribute yet match no variant, and the UI renders those differently.
type SelectionView struct {
	ProductID   uuid.UUID            `json:"product_id"`
	Prompt      string               `json:"prompt"`
	Selection   types.AttributeSet   `json:"selection"`
	Display     string               `json:"display"`
	Options     []OptionView         `json:"options"`
	Complete    bool                 `json:"complete"`
	Unavailable bool                 `json:"unavailable"`
	Resolved    *ResolvedVariantView `json:"resolved,omitempty"`
}
