package cart

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

func intPtr(v int) *int { return &v }

func baseProduct() *models.Product {
	brand := "Lumora"
	return &models.Product{
		ID:         uuid.New(),
		Title:      "Crew Tee",
		Brand:      &brand,
		PriceCents: 1999,
	}
}

func TestBuildLineItemVariantPricePrecedence(t *testing.T) {
	t.Parallel()

	product := baseProduct()
	variant := &models.ProductVariant{
		ID:         uuid.New(),
		PriceCents: intPtr(2499),
		Attributes: types.AttributeSet{{Name: "size", Value: "M"}, {Name: "color", Value: "Blue"}},
	}
	selection := types.AttributeSet{{Name: "size", Value: "M"}, {Name: "color", Value: "Blue"}}

	item := BuildLineItem(product, variant, selection, 2)

	if item.Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", item.Quantity)
	}
	if item.OriginalPriceCents != 1999 {
		t.Fatalf("original price = %d, want base 1999", item.OriginalPriceCents)
	}
	if item.DiscountedPriceCents != 2499 {
		t.Fatalf("effective price = %d, want variant 2499", item.DiscountedPriceCents)
	}
	if item.VariantDisplay != "Size: M, Color: Blue" {
		t.Fatalf("display = %q", item.VariantDisplay)
	}
	if size, _ := item.Variant.Get("size"); size != "M" {
		t.Fatalf("variant snapshot size = %q", size)
	}
	if item.ID == uuid.Nil {
		t.Fatal("line item id not generated")
	}
	if item.AddedAt.IsZero() {
		t.Fatal("added_at not set")
	}
}

func TestBuildLineItemBasePriceFallback(t *testing.T) {
	t.Parallel()

	product := baseProduct()

	item := BuildLineItem(product, nil, nil, 0)
	if item.Quantity != DefaultQuantity {
		t.Fatalf("quantity = %d, want default %d", item.Quantity, DefaultQuantity)
	}
	if item.DiscountedPriceCents != product.PriceCents {
		t.Fatalf("effective price = %d, want base %d", item.DiscountedPriceCents, product.PriceCents)
	}
	if item.VariantDisplay != "Default" {
		t.Fatalf("display = %q, want Default", item.VariantDisplay)
	}
}

func TestBuildLineItemDoesNotAliasSelection(t *testing.T) {
	t.Parallel()

	product := baseProduct()
	selection := types.AttributeSet{{Name: "size", Value: "M"}}

	item := BuildLineItem(product, nil, selection, 1)
	selection[0].Value = "L"

	if size, _ := item.Variant.Get("size"); size != "M" {
		t.Fatalf("snapshot mutated through caller state: size = %q", size)
	}
}

func TestBuildLineItemMonotonicAddedAt(t *testing.T) {
	t.Parallel()

	product := baseProduct()
	first := BuildLineItem(product, nil, nil, 1)
	second := BuildLineItem(product, nil, nil, 1)

	if second.AddedAt.Before(first.AddedAt) {
		t.Fatalf("added_at regressed: %v then %v", first.AddedAt, second.AddedAt)
	}
	if first.ID == second.ID {
		t.Fatal("sequential items share an id")
	}
}
