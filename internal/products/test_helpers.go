package product

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  sku TEXT,
  title TEXT NOT NULL,
  brand TEXT,
  image_url TEXT,
  price_cents INTEGER NOT NULL,
  compare_at_price_cents INTEGER,
  sizes TEXT,
  colors TEXT,
  requires_variant_selection INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	productVariants := `
CREATE TABLE IF NOT EXISTS product_variants (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  variant_code TEXT,
  sku TEXT,
  attributes TEXT,
  price_cents INTEGER,
  stock INTEGER,
  position INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`

	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(productVariants).Error)
	return db
}

func mustCreateProduct(t *testing.T, tx *gorm.DB, mutate func(*models.Product)) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:         uuid.New(),
		Title:      "Trail Jacket",
		PriceCents: 4999,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if mutate != nil {
		mutate(product)
	}
	require.NoError(t, tx.Create(product).Error)
	return product
}

func mustCreateVariant(t *testing.T, tx *gorm.DB, productID uuid.UUID, position int, attrs types.AttributeSet, mutate func(*models.ProductVariant)) *models.ProductVariant {
	t.Helper()

	variant := &models.ProductVariant{
		ID:         uuid.New(),
		ProductID:  productID,
		Attributes: attrs,
		Position:   position,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if mutate != nil {
		mutate(variant)
	}
	require.NoError(t, tx.Create(variant).Error)
	return variant
}
