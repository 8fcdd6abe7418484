package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/api/middleware"
	"github.com/lumora-labs/storefront-backend/api/responses"
	"github.com/lumora-labs/storefront-backend/api/validators"
	"github.com/lumora-labs/storefront-backend/internal/selections"
	pkgerrors "github.com/lumora-labs/storefront-backend/pkg/errors"
	"github.com/lumora-labs/storefront-backend/pkg/logger"
)

type selectAttributePayload struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

func selectionScope(r *http.Request) (string, uuid.UUID, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return "", uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "session context missing")
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		return "", uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}

	return sessionID, productID, nil
}

// SelectionGet returns the session's selection state for a product.
func SelectionGet(svc selections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "selection service unavailable"))
			return
		}

		sessionID, productID, err := selectionScope(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.GetSelection(ctx, sessionID, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// SelectionApply records one attribute choice and returns the updated view.
func SelectionApply(svc selections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "selection service unavailable"))
			return
		}

		sessionID, productID, err := selectionScope(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload selectAttributePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.SelectAttribute(ctx, sessionID, productID, payload.Name, payload.Value)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// SelectionReset clears the stored selection for a product.
func SelectionReset(svc selections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "selection service unavailable"))
			return
		}

		sessionID, productID, err := selectionScope(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.ResetSelection(ctx, sessionID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "reset"})
	}
}
