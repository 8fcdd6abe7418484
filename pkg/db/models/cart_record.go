package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/pkg/enums"
)

// CartRecord is the device-session cart the storefront appends resolved
// selections to. One active record exists per session id.
type CartRecord struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID     string           `gorm:"column:session_id;not null;index"`
	Status        enums.CartStatus `gorm:"column:status;not null;default:'active'"`
	SubtotalCents int              `gorm:"column:subtotal_cents;not null;default:0"`
	DiscountCents int              `gorm:"column:discount_cents;not null;default:0"`
	TotalCents    int              `gorm:"column:total_cents;not null;default:0"`
	Items         []CartItem       `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
