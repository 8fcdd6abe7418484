package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// CartItemDTO is one line of the session cart as returned to clients.
type CartItemDTO struct {
	ID                   uuid.UUID          `json:"id"`
	ProductID            uuid.UUID          `json:"product_id"`
	Title                string             `json:"title"`
	Brand                *string            `json:"brand,omitempty"`
	ImageURL             *string            `json:"image_url,omitempty"`
	Quantity             int                `json:"quantity"`
	OriginalPriceCents   int                `json:"original_price_cents"`
	DiscountedPriceCents int                `json:"discounted_price_cents"`
	VariantSKU           string             `json:"variant_sku"`
	Variant              types.AttributeSet `json:"variant"`
	VariantDisplay       string             `json:"variant_display"`
	AddedAt              time.Time          `json:"added_at"`
}

// CartDTO is the session cart payload.
type CartDTO struct {
	ID            uuid.UUID     `json:"id"`
	SessionID     string        `json:"session_id"`
	Status        string        `json:"status"`
	SubtotalCents int           `json:"subtotal_cents"`
	DiscountCents int           `json:"discount_cents"`
	TotalCents    int           `json:"total_cents"`
	Items         []CartItemDTO `json:"items"`
}

// NewCartDTO maps a persisted cart record to its response payload.
func NewCartDTO(record *models.CartRecord) *CartDTO {
	dto := &CartDTO{
		ID:            record.ID,
		SessionID:     record.SessionID,
		Status:        record.Status.String(),
		SubtotalCents: record.SubtotalCents,
		DiscountCents: record.DiscountCents,
		TotalCents:    record.TotalCents,
		Items:         make([]CartItemDTO, 0, len(record.Items)),
	}
	for _, item := range record.Items {
		dto.Items = append(dto.Items, CartItemDTO{
			ID:                   item.ID,
			ProductID:            item.ProductID,
			Title:                item.Title,
			Brand:                item.Brand,
			ImageURL:             item.ImageURL,
			Quantity:             item.Quantity,
			OriginalPriceCents:   item.OriginalPriceCents,
			DiscountedPriceCents: item.DiscountedPriceCents,
			VariantSKU:           item.VariantSKU,
			Variant:              item.Variant,
			VariantDisplay:       item.VariantDisplay,
			AddedAt:              item.AddedAt,
		})
	}
	return dto
}
