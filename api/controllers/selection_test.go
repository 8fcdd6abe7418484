package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lumora-labs/storefront-backend/api/middleware"
	"github.com/lumora-labs/storefront-backend/internal/selections"
	pkgerrors "github.com/lumora-labs/storefront-backend/pkg/errors"
)

type stubSelectionService struct {
	view      *selections.SelectionView
	err       error
	lastName  string
	lastValue string
	resets    int
}

func (s *stubSelectionService) GetSelection(ctx context.Context, sessionID string, productID uuid.UUID) (*selections.SelectionView, error) {
	return s.view, s.err
}

func (s *stubSelectionService) SelectAttribute(ctx context.Context, sessionID string, productID uuid.UUID, name, value string) (*selections.SelectionView, error) {
	s.lastName = name
	s.lastValue = value
	return s.view, s.err
}

func (s *stubSelectionService) ResetSelection(ctx context.Context, sessionID string, productID uuid.UUID) error {
	s.resets++
	return s.err
}

func selectionTestRequest(method, productID, body string) *http.Request {
	target := "/api/v1/products/" + productID + "/selection"
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req = req.WithContext(middleware.WithSessionID(req.Context(), "sess-1"))
	return withURLParam(req, "productId", productID)
}

func TestSelectionGetSuccess(t *testing.T) {
	productID := uuid.New()
	view := &selections.SelectionView{ProductID: productID, Prompt: "Select Size & Color"}
	handler := SelectionGet(&stubSelectionService{view: view}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, selectionTestRequest(http.MethodGet, productID.String(), ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data selections.SelectionView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ProductID != productID {
		t.Fatalf("unexpected product id: %s", envelope.Data.ProductID)
	}
	if envelope.Data.Prompt != "Select Size & Color" {
		t.Fatalf("unexpected prompt: %q", envelope.Data.Prompt)
	}
}

func TestSelectionGetMissingSession(t *testing.T) {
	productID := uuid.New()
	handler := SelectionGet(&stubSelectionService{}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String()+"/selection", nil), "productId", productID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestSelectionApplyPassesAttribute(t *testing.T) {
	productID := uuid.New()
	svc := &stubSelectionService{view: &selections.SelectionView{ProductID: productID}}
	handler := SelectionApply(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, selectionTestRequest(http.MethodPost, productID.String(), `{"name":"size","value":"M"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastName != "size" || svc.lastValue != "M" {
		t.Fatalf("unexpected attribute passed to service: %q=%q", svc.lastName, svc.lastValue)
	}
}

func TestSelectionApplyRequiresNameAndValue(t *testing.T) {
	productID := uuid.New()
	handler := SelectionApply(&stubSelectionService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, selectionTestRequest(http.MethodPost, productID.String(), `{"name":"size"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestSelectionApplyUnknownValue(t *testing.T) {
	productID := uuid.New()
	err := pkgerrors.New(pkgerrors.CodeValidation, "unknown option value")
	handler := SelectionApply(&stubSelectionService{err: err}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, selectionTestRequest(http.MethodPost, productID.String(), `{"name":"size","value":"XXL"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestSelectionResetSuccess(t *testing.T) {
	productID := uuid.New()
	svc := &stubSelectionService{}
	handler := SelectionReset(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, selectionTestRequest(http.MethodDelete, productID.String(), ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.resets != 1 {
		t.Fatalf("expected one reset call, got %d", svc.resets)
	}
}
