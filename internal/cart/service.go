package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/lumora-labs/storefront-backend/internal/variants"
	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	"github.com/lumora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/lumora-labs/storefront-backend/pkg/errors"
	"github.com/lumora-labs/storefront-backend/pkg/metrics"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// AddItemInput is the validated payload for an add-to-cart action.
type AddItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// Service exposes the session cart operations.
type Service interface {
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*CartDTO, error)
	GetActiveCart(ctx context.Context, sessionID string) (*CartDTO, error)
}

type service struct {
	repo       CartRepository
	txRunner   TxRunner
	products   ProductLoader
	selections SelectionLoader
	metrics    *metrics.ResolutionMetrics
}

// NewService builds a cart service with the required dependencies.
func NewService(repo CartRepository, txRunner TxRunner, products ProductLoader, selectionLoader SelectionLoader, m *metrics.ResolutionMetrics) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
	}
	if txRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tx runner is required")
	}
	if products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product loader is required")
	}
	if selectionLoader == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "selection loader is required")
	}
	return &service{
		repo:       repo,
		txRunner:   txRunner,
		products:   products,
		selections: selectionLoader,
		metrics:    m,
	}, nil
}

// AddItem resolves the session's selection for the product, validates stock
// for the requested quantity, and appends the line item to the active cart,
// creating one when the session has none. Item insert and totals update
// commit atomically.
func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*CartDTO, error) {
	if err := validateAddItem(sessionID, input); err != nil {
		return nil, err
	}

	prod, err := s.products.FindByIDWithVariants(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = DefaultQuantity
	}

	resolved, selection, err := s.resolveSelection(ctx, sessionID, prod, quantity)
	if err != nil {
		return nil, err
	}

	item := BuildLineItem(prod, resolved, selection, quantity)

	var record *models.CartRecord
	err = s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		active, err := repo.FindActiveBySession(ctx, sessionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			active, err = repo.Create(ctx, &models.CartRecord{
				SessionID: sessionID,
				Status:    enums.CartStatusActive,
			})
		}
		if err != nil {
			return err
		}

		item.CartID = active.ID
		if err := repo.CreateItem(ctx, &item); err != nil {
			return err
		}

		subtotal, discount, total := computeTotals(append(active.Items, item))
		if err := repo.UpdateTotals(ctx, active.ID, subtotal, discount, total); err != nil {
			return err
		}

		record, err = repo.FindActiveBySession(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart item")
	}

	s.metrics.IncCartAdd()
	return NewCartDTO(record), nil
}

// GetActiveCart returns the session's active cart.
func (s *service) GetActiveCart(ctx context.Context, sessionID string) (*CartDTO, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	record, err := s.repo.FindActiveBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "no active cart for session")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return NewCartDTO(record), nil
}

// resolveSelection maps the session's stored selection onto a concrete
// variant. Products without selectable options skip resolution entirely.
func (s *service) resolveSelection(ctx context.Context, sessionID string, prod *models.Product, quantity int) (*models.ProductVariant, types.AttributeSet, error) {
	options := variants.ExtractOptions(prod.Variants)
	if len(options) == 0 {
		return nil, nil, nil
	}

	view, err := s.selections.GetSelection(ctx, sessionID, prod.ID)
	if err != nil {
		return nil, nil, err
	}
	if !view.Complete {
		return nil, nil, pkgerrors.New(pkgerrors.CodeStateConflict, "selection is incomplete").
			WithDetails(map[string]any{"prompt": view.Prompt})
	}
	if view.Resolved == nil {
		return nil, nil, pkgerrors.New(pkgerrors.CodeStateConflict, "selected combination is unavailable")
	}

	var resolved *models.ProductVariant
	for i := range prod.Variants {
		if prod.Variants[i].ID == view.Resolved.ID {
			resolved = &prod.Variants[i]
			break
		}
	}
	if resolved == nil {
		return nil, nil, pkgerrors.New(pkgerrors.CodeStateConflict, "selected combination is unavailable")
	}
	if !variants.IsInStock(resolved, quantity) {
		return nil, nil, pkgerrors.New(pkgerrors.CodeStateConflict, "insufficient stock for requested quantity").
			WithDetails(map[string]any{"quantity": quantity})
	}
	return resolved, view.Selection, nil
}

func validateAddItem(sessionID string, input AddItemInput) error {
	var verr error
	if sessionID == "" {
		verr = multierr.Append(verr, errors.New("session id is required"))
	}
	if input.ProductID == uuid.Nil {
		verr = multierr.Append(verr, errors.New("product id is required"))
	}
	if input.Quantity < 0 {
		verr = multierr.Append(verr, errors.New("quantity must not be negative"))
	}
	if verr == nil {
		return nil
	}

	details := make([]string, 0)
	for _, err := range multierr.Errors(verr) {
		details = append(details, err.Error())
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid add to cart request").WithDetails(details)
}

// computeTotals recomputes the cart money columns from its line items.
// Arithmetic goes through decimal so per-line extensions never overflow or
// drift, then lands back in integer cents.
func computeTotals(items []models.CartItem) (subtotalCents, discountCents, totalCents int) {
	subtotal := decimal.Zero
	discount := decimal.Zero
	total := decimal.Zero

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		original := decimal.NewFromInt(int64(item.OriginalPriceCents)).Mul(qty)
		paid := decimal.NewFromInt(int64(item.DiscountedPriceCents)).Mul(qty)

		subtotal = subtotal.Add(original)
		total = total.Add(paid)
		if saved := original.Sub(paid); saved.IsPositive() {
			discount = discount.Add(saved)
		}
	}
	return int(subtotal.IntPart()), int(discount.IntPart()), int(total.IntPart())
}
