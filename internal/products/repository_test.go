package product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/pagination"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

func TestFindByIDWithVariantsOrdersByPosition(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	prod := mustCreateProduct(t, db, nil)
	mustCreateVariant(t, db, prod.ID, 2, types.AttributeSet{{Name: "size", Value: "L"}}, nil)
	mustCreateVariant(t, db, prod.ID, 0, types.AttributeSet{{Name: "size", Value: "S"}}, nil)
	mustCreateVariant(t, db, prod.ID, 1, types.AttributeSet{{Name: "size", Value: "M"}}, nil)

	got, err := repo.FindByIDWithVariants(ctx, prod.ID)
	require.NoError(t, err)
	require.Len(t, got.Variants, 3)

	sizes := make([]string, 0, 3)
	for _, variant := range got.Variants {
		size, _ := variant.Attributes.Get("size")
		sizes = append(sizes, size)
	}
	assert.Equal(t, []string{"S", "M", "L"}, sizes)
}

func TestFindByIDWithVariantsRoundTripsAttributeOrder(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	prod := mustCreateProduct(t, db, nil)
	attrs := types.AttributeSet{
		{Name: "size", Value: "M"},
		{Name: "color", Value: "Blue"},
		{Name: "Material", Value: "Wool"},
	}
	mustCreateVariant(t, db, prod.ID, 0, attrs, nil)

	got, err := repo.FindByIDWithVariants(ctx, prod.ID)
	require.NoError(t, err)
	require.Len(t, got.Variants, 1)
	assert.Equal(t, []string{"size", "color", "Material"}, got.Variants[0].Attributes.Names())
}

func TestListPaginatesNewestFirst(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	titles := []string{"zqlist alpha", "zqlist bravo", "zqlist charlie"}
	for i, title := range titles {
		title := title
		offset := time.Duration(i) * time.Hour
		mustCreateProduct(t, db, func(p *models.Product) {
			p.Title = title
			p.CreatedAt = base.Add(offset)
			p.UpdatedAt = base.Add(offset)
		})
	}

	first, err := repo.List(ctx, ListQuery{
		Pagination: pagination.Params{Limit: 2},
		Filters:    ListFilters{Query: "zqlist", ActiveOnly: true},
	})
	require.NoError(t, err)
	require.Len(t, first.Products, 2)
	assert.Equal(t, "zqlist charlie", first.Products[0].Title)
	assert.Equal(t, "zqlist bravo", first.Products[1].Title)
	require.NotEmpty(t, first.NextCursor)

	second, err := repo.List(ctx, ListQuery{
		Pagination: pagination.Params{Limit: 2, Cursor: first.NextCursor},
		Filters:    ListFilters{Query: "zqlist", ActiveOnly: true},
	})
	require.NoError(t, err)
	require.Len(t, second.Products, 1)
	assert.Equal(t, "zqlist alpha", second.Products[0].Title)
	assert.Empty(t, second.NextCursor)
}

func TestListActiveOnlyFilter(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mustCreateProduct(t, db, func(p *models.Product) {
		p.Title = "zqactive visible"
	})
	mustCreateProduct(t, db, func(p *models.Product) {
		p.Title = "zqactive hidden"
		p.IsActive = false
	})

	result, err := repo.List(ctx, ListQuery{
		Pagination: pagination.Params{Limit: 10},
		Filters:    ListFilters{Query: "zqactive", ActiveOnly: true},
	})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "zqactive visible", result.Products[0].Title)

	all, err := repo.List(ctx, ListQuery{
		Pagination: pagination.Params{Limit: 10},
		Filters:    ListFilters{Query: "zqactive"},
	})
	require.NoError(t, err)
	assert.Len(t, all.Products, 2)
}
