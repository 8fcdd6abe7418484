package variants

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

func TestResolveIncompleteSelection(t *testing.T) {
	t.Parallel()

	catalog := []models.ProductVariant{
		variantWith(types.AttributeSet{{Name: "size", Value: "M"}, {Name: "color", Value: "Blue"}}),
	}

	partial := types.AttributeSet{{Name: "size", Value: "M"}}
	if got := Resolve(catalog, partial); got != nil {
		t.Fatalf("partial selection resolved to %+v", got)
	}
	if got := Resolve(catalog, nil); got != nil {
		t.Fatalf("empty selection resolved to %+v", got)
	}
}

func TestResolveExactMatch(t *testing.T) {
	t.Parallel()

	want := uuid.New()
	catalog := []models.ProductVariant{
		{ID: uuid.New(), Attributes: types.AttributeSet{{Name: "size", Value: "M"}, {Name: "color", Value: "Red"}}},
		{ID: want, Attributes: types.AttributeSet{{Name: "size", Value: "M"}, {Name: "color", Value: "Blue"}}},
	}

	selection := types.AttributeSet{{Name: "color", Value: "Blue"}, {Name: "size", Value: "M"}}
	got := Resolve(catalog, selection)
	if got == nil {
		t.Fatal("complete matching selection resolved to nil")
	}
	if got.ID != want {
		t.Fatalf("resolved variant %s, want %s", got.ID, want)
	}
}

func TestResolveCompleteButUnavailable(t *testing.T) {
	t.Parallel()

	catalog := []models.ProductVariant{
		variantWith(types.AttributeSet{{Name: "size", Value: "M"}, {Name: "color", Value: "Red"}}),
		variantWith(types.AttributeSet{{Name: "size", Value: "L"}, {Name: "color", Value: "Blue"}}),
	}

	// M/Blue covers every option name but matches no variant.
	selection := types.AttributeSet{{Name: "size", Value: "M"}, {Name: "color", Value: "Blue"}}
	if got := Resolve(catalog, selection); got != nil {
		t.Fatalf("out-of-combination selection resolved to %+v", got)
	}
}

func TestResolveDuplicateCombinationFirstWins(t *testing.T) {
	t.Parallel()

	first := uuid.New()
	catalog := []models.ProductVariant{
		{ID: first, Attributes: types.AttributeSet{{Name: "size", Value: "M"}}},
		{ID: uuid.New(), Attributes: types.AttributeSet{{Name: "size", Value: "M"}}},
	}

	selection := types.AttributeSet{{Name: "size", Value: "M"}}
	got := Resolve(catalog, selection)
	if got == nil || got.ID != first {
		t.Fatalf("duplicate combination did not resolve to first catalog entry: %+v", got)
	}
}

func TestResolveRequiresFullKeyCoverage(t *testing.T) {
	t.Parallel()

	catalog := []models.ProductVariant{
		variantWith(types.AttributeSet{{Name: "size", Value: "M"}}),
		variantWith(types.AttributeSet{{Name: "size", Value: "L"}, {Name: "color", Value: "Blue"}}),
	}

	// "color" is derivable from the catalog, so size alone is incomplete
	// even though a variant with only size exists.
	selection := types.AttributeSet{{Name: "size", Value: "M"}}
	if got := Resolve(catalog, selection); got != nil {
		t.Fatalf("selection missing derivable attribute resolved to %+v", got)
	}
}
