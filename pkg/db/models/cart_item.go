package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// CartItem snapshots one resolved product/variant selection at the moment it
// was added. Pricing is frozen here; later catalog edits do not reprice
// lines already in the cart.
type CartItem struct {
	ID                   uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID               uuid.UUID          `gorm:"column:cart_id;type:uuid;not null;index"`
	ProductID            uuid.UUID          `gorm:"column:product_id;type:uuid;not null"`
	Title                string             `gorm:"column:title;not null"`
	Brand                *string            `gorm:"column:brand"`
	ImageURL             *string            `gorm:"column:image_url"`
	Quantity             int                `gorm:"column:quantity;not null"`
	OriginalPriceCents   int                `gorm:"column:original_price_cents;not null"`
	DiscountedPriceCents int                `gorm:"column:discounted_price_cents;not null"`
	VariantSKU           string             `gorm:"column:variant_sku;not null"`
	Variant              types.AttributeSet `gorm:"column:variant;type:jsonb"`
	VariantDisplay       string             `gorm:"column:variant_display;not null"`
	AddedAt              time.Time          `gorm:"column:added_at;not null"`
	CreatedAt            time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
