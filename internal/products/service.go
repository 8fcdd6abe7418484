package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/lumora-labs/storefront-backend/pkg/errors"
	"github.com/lumora-labs/storefront-backend/pkg/pagination"
)

// Service exposes read operations over the storefront catalog.
type Service interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetailDTO, error)
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListPageDTO, error)
}

// ListProductsInput captures the inputs to paginate and filter the catalog.
type ListProductsInput struct {
	Query           string
	IncludeInactive bool
	Pagination      pagination.Params
}

// ServiceParams groups dependencies for the product service.
type ServiceParams struct {
	Repo *Repository
}

type service struct {
	repo *Repository
}

// NewService builds a product service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// GetProduct loads a product with its variant catalog and derived options.
func (s *service) GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetailDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.repo.FindByIDWithVariants(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return NewProductDetailDTO(product), nil
}

// ListProducts returns a storefront page of product summaries.
func (s *service) ListProducts(ctx context.Context, input ListProductsInput) (*ProductListPageDTO, error) {
	result, err := s.repo.List(ctx, ListQuery{
		Pagination: input.Pagination,
		Filters: ListFilters{
			Query:      input.Query,
			ActiveOnly: !input.IncludeInactive,
		},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	page := &ProductListPageDTO{
		Products:   make([]ProductSummary, 0, len(result.Products)),
		NextCursor: result.NextCursor,
	}
	for i := range result.Products {
		page.Products = append(page.Products, NewProductSummary(&result.Products[i]))
	}
	return page, nil
}
