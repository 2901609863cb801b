package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
)

type stubMailer struct {
	err       error
	delivered []models.Order
}

func (s *stubMailer) Deliver(_ context.Context, order models.Order) error {
	s.delivered = append(s.delivered, order)
	return s.err
}

func TestSendOrderEmail(t *testing.T) {
	mailer := &stubMailer{}
	req := httptest.NewRequest(http.MethodPost, "/order-email", strings.NewReader(validOrderBody))
	w := httptest.NewRecorder()

	SendOrderEmail(mailer, nil)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(mailer.delivered) != 1 {
		t.Fatalf("expected one delivery, got %d", len(mailer.delivered))
	}
	order := mailer.delivered[0]
	if order.ID != "ord_test" || order.Total != 250 || order.Customer.Email != "arta@example.com" {
		t.Fatalf("payload not mapped onto order: %+v", order)
	}
}

func TestSendOrderEmailSurfacesProviderFailure(t *testing.T) {
	mailer := &stubMailer{err: errors.New("provider down")}
	req := httptest.NewRequest(http.MethodPost, "/order-email", strings.NewReader(validOrderBody))
	w := httptest.NewRecorder()

	SendOrderEmail(mailer, nil)(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestSendOrderEmailSurfacesMisconfiguration(t *testing.T) {
	mailer := &stubMailer{err: pkgerrors.New(pkgerrors.CodeMisconfigured, "missing email configuration")}
	req := httptest.NewRequest(http.MethodPost, "/order-email", strings.NewReader(validOrderBody))
	w := httptest.NewRecorder()

	SendOrderEmail(mailer, nil)(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "SERVER_MISCONFIGURED") {
		t.Fatalf("expected misconfiguration code, got %s", w.Body.String())
	}
}
