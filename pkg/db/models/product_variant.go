package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// ProductVariant is one concrete attribute combination with its own SKU,
// price override and stock. Position preserves catalog order, which is the
// documented tie-break when a malformed catalog carries duplicate
// attribute combinations.
type ProductVariant struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID   uuid.UUID          `gorm:"column:product_id;type:uuid;not null;index"`
	VariantCode *string            `gorm:"column:variant_code"`
	SKU         *string            `gorm:"column:sku"`
	Attributes  types.AttributeSet `gorm:"column:attributes;type:jsonb"`
	PriceCents  *int               `gorm:"column:price_cents"`
	Stock       *int               `gorm:"column:stock"`
	Position    int                `gorm:"column:position;not null;default:0"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
