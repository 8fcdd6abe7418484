package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/internal/variants"
	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// ProductSummary is the listing card payload.
type ProductSummary struct {
	ID                  uuid.UUID `json:"id"`
	SKU                 *string   `json:"sku,omitempty"`
	Title               string    `json:"title"`
	Brand               *string   `json:"brand,omitempty"`
	ImageURL            *string   `json:"image_url,omitempty"`
	PriceCents          int       `json:"price_cents"`
	CompareAtPriceCents *int      `json:"compare_at_price_cents,omitempty"`
	HasVariants         bool      `json:"has_variants"`
	SelectionPrompt     string    `json:"selection_prompt"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ProductListPageDTO is one page of summaries plus the next-page cursor.
type ProductListPageDTO struct {
	Products   []ProductSummary `json:"products"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// VariantDTO exposes one purchasable variant to clients. SKU is always
// populated; when the catalog omits it a synthesized one is derived.
type VariantDTO struct {
	ID          uuid.UUID          `json:"id"`
	VariantCode *string            `json:"variant_code,omitempty"`
	SKU         string             `json:"sku"`
	Attributes  types.AttributeSet `json:"attributes"`
	PriceCents  int                `json:"price_cents"`
	Stock       *int               `json:"stock,omitempty"`
	InStock     bool               `json:"in_stock"`
	Display     string             `json:"display"`
}

// ProductDetailDTO is the product-detail payload: the product, its variant
// catalog, and the selectable options derived from that catalog.
type ProductDetailDTO struct {
	ProductSummary
	Sizes    []string                   `json:"sizes,omitempty"`
	Colors   []string                   `json:"colors,omitempty"`
	Options  []variants.AttributeOption `json:"options"`
	Variants []VariantDTO               `json:"variants"`
}

// NewProductSummary builds a listing card from the persisted model.
func NewProductSummary(product *models.Product) ProductSummary {
	return ProductSummary{
		ID:                  product.ID,
		SKU:                 product.SKU,
		Title:               product.Title,
		Brand:               product.Brand,
		ImageURL:            product.ImageURL,
		PriceCents:          product.PriceCents,
		CompareAtPriceCents: product.CompareAtPriceCents,
		HasVariants:         variants.HasVariants(product),
		SelectionPrompt:     variants.SelectionPrompt(product),
		CreatedAt:           product.CreatedAt,
		UpdatedAt:           product.UpdatedAt,
	}
}

// NewProductDetailDTO builds the full detail payload, deriving options from
// the variant catalog and filling in synthesized SKUs and display strings.
func NewProductDetailDTO(product *models.Product) *ProductDetailDTO {
	dto := &ProductDetailDTO{
		ProductSummary: NewProductSummary(product),
		Sizes:          append([]string{}, product.Sizes...),
		Colors:         append([]string{}, product.Colors...),
		Options:        variants.ExtractOptions(product.Variants),
		Variants:       make([]VariantDTO, 0, len(product.Variants)),
	}

	for i := range product.Variants {
		variant := &product.Variants[i]
		dto.Variants = append(dto.Variants, VariantDTO{
			ID:          variant.ID,
			VariantCode: variant.VariantCode,
			SKU:         variants.GenerateSKU(product, variant),
			Attributes:  variant.Attributes,
			PriceCents:  variants.VariantPrice(product.PriceCents, variant),
			Stock:       variant.Stock,
			InStock:     variants.IsInStock(variant, 1),
			Display:     variants.FormatDisplay(variant.Attributes),
		})
	}
	return dto
}
