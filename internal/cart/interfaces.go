package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumora-labs/storefront-backend/internal/selections"
	"github.com/lumora-labs/storefront-backend/pkg/db/models"
)

// TxRunner executes a function inside a database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CartRepository persists session carts and their line items.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	FindActiveBySession(ctx context.Context, sessionID string) (*models.CartRecord, error)
	Create(ctx context.Context, record *models.CartRecord) (*models.CartRecord, error)
	CreateItem(ctx context.Context, item *models.CartItem) error
	UpdateTotals(ctx context.Context, cartID uuid.UUID, subtotalCents, discountCents, totalCents int) error
}

// ProductLoader loads a product with its variant catalog.
type ProductLoader interface {
	FindByIDWithVariants(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// SelectionLoader returns the session's current selection state for a product.
type SelectionLoader interface {
	GetSelection(ctx context.Context, sessionID string, productID uuid.UUID) (*selections.SelectionView, error)
}
