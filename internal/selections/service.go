package selections

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	product "github.com/lumora-labs/storefront-backend/internal/products"
	"github.com/lumora-labs/storefront-backend/internal/variants"
	"github.com/lumora-labs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lumora-labs/storefront-backend/pkg/errors"
	"github.com/lumora-labs/storefront-backend/pkg/metrics"
	"github.com/lumora-labs/storefront-backend/pkg/redis"
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// DefaultTTL bounds how long an abandoned selection survives in redis.
const DefaultTTL = 24 * time.Hour

// Store abstracts the redis surface the selection service needs.
type Store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SelectionKey(sessionID, productID string) string
}

// Service owns the SelectionState lifecycle: seeded empty (or from a prior
// session within TTL), mutated one attribute at a time, reset when the
// shopper abandons the product.
type Service interface {
	GetSelection(ctx context.Context, sessionID string, productID uuid.UUID) (*SelectionView, error)
	SelectAttribute(ctx context.Context, sessionID string, productID uuid.UUID, name, value string) (*SelectionView, error)
	ResetSelection(ctx context.Context, sessionID string, productID uuid.UUID) error
}

// ServiceParams groups dependencies for the selection service.
type ServiceParams struct {
	ProductRepo *product.Repository
	Store       Store
	Metrics     *metrics.ResolutionMetrics
	TTL         time.Duration
}

type service struct {
	productRepo *product.Repository
	store       Store
	metrics     *metrics.ResolutionMetrics
	ttl         time.Duration
}

// NewService builds a selection service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ProductRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product repo is required")
	}
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "selection store is required")
	}
	ttl := params.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &service{
		productRepo: params.ProductRepo,
		store:       params.Store,
		metrics:     params.Metrics,
		ttl:         ttl,
	}, nil
}

// GetSelection returns the current render state without mutating anything.
func (s *service) GetSelection(ctx context.Context, sessionID string, productID uuid.UUID) (*SelectionView, error) {
	prod, err := s.loadProduct(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}
	state, err := s.loadState(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}
	return s.buildView(prod, state), nil
}

// SelectAttribute applies one attribute choice, persists the new state and
// returns the refreshed view. The write is rejected when the attribute name
// or value does not exist in the product's option catalog; a combination
// that matches no variant is a legal dead end and is accepted.
func (s *service) SelectAttribute(ctx context.Context, sessionID string, productID uuid.UUID, name, value string) (*SelectionView, error) {
	if name == "" || value == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "attribute name and value are required")
	}

	prod, err := s.loadProduct(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}
	options := variants.ExtractOptions(prod.Variants)
	if !optionExists(options, name, value) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown attribute or value for this product").
			WithDetails(map[string]string{"name": name, "value": value})
	}

	state, err := s.loadState(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}

	next := variants.Apply(state, name, value)
	if err := s.saveState(ctx, sessionID, productID, next); err != nil {
		return nil, err
	}

	view := s.buildView(prod, next)
	s.metrics.IncResolution(resolutionOutcome(view))
	return view, nil
}

// ResetSelection drops the stored state. Missing state is not an error.
func (s *service) ResetSelection(ctx context.Context, sessionID string, productID uuid.UUID) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	key := s.store.SelectionKey(sessionID, productID.String())
	if err := s.store.Del(ctx, key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reset selection")
	}
	return nil
}

func (s *service) loadProduct(ctx context.Context, sessionID string, productID uuid.UUID) (*models.Product, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	prod, err := s.productRepo.FindByIDWithVariants(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return prod, nil
}

func (s *service) loadState(ctx context.Context, sessionID string, productID uuid.UUID) (types.AttributeSet, error) {
	key := s.store.SelectionKey(sessionID, productID.String())
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if redis.IsNil(err) {
			return types.AttributeSet{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load selection state")
	}

	var state types.AttributeSet
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// Corrupted state is unrecoverable; start the selection over
		// rather than failing the request.
		return types.AttributeSet{}, nil
	}
	return state, nil
}

func (s *service) saveState(ctx context.Context, sessionID string, productID uuid.UUID, state types.AttributeSet) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode selection state")
	}
	key := s.store.SelectionKey(sessionID, productID.String())
	if err := s.store.Set(ctx, key, string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist selection state")
	}
	return nil
}

func (s *service) buildView(prod *models.Product, state types.AttributeSet) *SelectionView {
	options := variants.ExtractOptions(prod.Variants)
	required := variants.OptionNames(options)

	view := &SelectionView{
		ProductID: prod.ID,
		Prompt:    variants.SelectionPrompt(prod),
		Selection: state,
		Display:   variants.FormatDisplay(state),
		Options:   make([]OptionView, 0, len(options)),
		Complete:  variants.IsSelectionComplete(state, required),
	}

	for _, option := range options {
		values := make([]OptionValueView, 0, len(option.Values))
		chosen, _ := state.Get(option.Name)
		for _, candidate := range option.Values {
			values = append(values, OptionValueView{
				Value:       candidate.Value,
				DisplayName: candidate.DisplayName,
				Selected:    candidate.Value == chosen,
				Available:   variants.IsOptionAvailable(prod.Variants, state, option.Name, candidate.Value),
			})
		}
		view.Options = append(view.Options, OptionView{Name: option.Name, Values: values})
	}

	if resolved := variants.Resolve(prod.Variants, state); resolved != nil {
		view.Resolved = &ResolvedVariantView{
			ID:         resolved.ID,
			SKU:        variants.GenerateSKU(prod, resolved),
			PriceCents: variants.VariantPrice(prod.PriceCents, resolved),
			Stock:      resolved.Stock,
			InStock:    variants.IsInStock(resolved, 1),
			Display:    variants.FormatDisplay(resolved.Attributes),
		}
	} else if view.Complete && len(options) > 0 {
		view.Unavailable = true
	}
	return view
}

func resolutionOutcome(view *SelectionView) string {
	switch {
	case view.Resolved != nil:
		return metrics.OutcomeResolved
	case view.Unavailable:
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeIncomplete
	}
}

func optionExists(options []variants.AttributeOption, name, value string) bool {
	for _, option := range options {
		if option.Name != name {
			continue
		}
		for _, candidate := range option.Values {
			if candidate.Value == value {
				return true
			}
		}
	}
	return false
}
