package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is the storefront listing a shopper lands on. Sizes and colors
// mirror the option chips the mobile UI renders before any variant data is
// consulted; the variants association carries the concrete purchasable units.
type Product struct {
	ID                       uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU                      *string          `gorm:"column:sku"`
	Title                    string           `gorm:"column:title;not null"`
	Brand                    *string          `gorm:"column:brand"`
	ImageURL                 *string          `gorm:"column:image_url"`
	PriceCents               int              `gorm:"column:price_cents;not null"`
	CompareAtPriceCents      *int             `gorm:"column:compare_at_price_cents"`
	Sizes                    pq.StringArray   `gorm:"column:sizes;type:text[]"`
	Colors                   pq.StringArray   `gorm:"column:colors;type:text[]"`
	RequiresVariantSelection bool             `gorm:"column:requires_variant_selection;not null;default:false"`
	IsActive                 bool             `gorm:"column:is_active;not null;default:true"`
	Variants                 []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt                time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
