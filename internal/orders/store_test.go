package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/enums"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
)

type stubStore struct {
	saveErr   error
	listErr   error
	updateErr error
	saved     []models.Order
	listRows  []models.Order
	updates   []string
}

func (s *stubStore) Save(_ context.Context, order *models.Order) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, *order)
	return nil
}

func (s *stubStore) List(_ context.Context) ([]models.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listRows, nil
}

func (s *stubStore) UpdateStatus(_ context.Context, id string, _ enums.OrderStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates = append(s.updates, id)
	return nil
}

func newDual(t *testing.T, primary Store, devMode bool) *Dual {
	t.Helper()
	dual, err := NewDual(primary, newTestFallback(t), devMode, nil, nil)
	if err != nil {
		t.Fatalf("NewDual: %v", err)
	}
	return dual
}

func TestDualSaveHostedSuccess(t *testing.T) {
	primary := &stubStore{}
	dual := newDual(t, primary, false)

	if err := dual.Save(context.Background(), sampleOrder("ord_h")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(primary.saved) != 1 {
		t.Fatalf("expected hosted write, got %d", len(primary.saved))
	}
}

func TestDualSaveProdFailureSurfaces(t *testing.T) {
	primary := &stubStore{saveErr: errors.New("network down")}
	dual := newDual(t, primary, false)

	err := dual.Save(context.Background(), sampleOrder("ord_p"))
	if err == nil {
		t.Fatal("expected error in production mode")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}

	// the failed write must not land in the fallback slot
	list, _ := dual.fallback.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("fallback should be untouched in prod, got %d orders", len(list))
	}
}

func TestDualSaveDevFailureFallsBack(t *testing.T) {
	primary := &stubStore{saveErr: errors.New("network down")}
	dual := newDual(t, primary, true)

	if err := dual.Save(context.Background(), sampleOrder("ord_d")); err != nil {
		t.Fatalf("dev save should fall back, got %v", err)
	}

	list, err := dual.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != "ord_d" {
		t.Fatalf("expected order in fallback, got %+v", list)
	}
}

func TestDualSaveUnconfiguredPrimary(t *testing.T) {
	dev := newDual(t, nil, true)
	if err := dev.Save(context.Background(), sampleOrder("ord_u")); err != nil {
		t.Fatalf("dev save without primary should use fallback, got %v", err)
	}

	prod := newDual(t, nil, false)
	err := prod.Save(context.Background(), sampleOrder("ord_u2"))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeMisconfigured {
		t.Fatalf("expected misconfigured error, got %v", err)
	}
}

func TestDualListFallsBackOnPrimaryError(t *testing.T) {
	primary := &stubStore{listErr: errors.New("timeout")}
	dual := newDual(t, primary, false)

	if err := dual.fallback.Save(context.Background(), sampleOrder("ord_f")); err != nil {
		t.Fatalf("seed fallback: %v", err)
	}

	list, err := dual.List(context.Background())
	if err != nil {
		t.Fatalf("List should fall back, got %v", err)
	}
	if len(list) != 1 || list[0].ID != "ord_f" {
		t.Fatalf("expected fallback list, got %+v", list)
	}
}

func TestDualUpdateStatusFallsBackOnPrimaryError(t *testing.T) {
	primary := &stubStore{updateErr: errors.New("timeout")}
	dual := newDual(t, primary, false)

	if err := dual.fallback.Save(context.Background(), sampleOrder("ord_s")); err != nil {
		t.Fatalf("seed fallback: %v", err)
	}

	if err := dual.UpdateStatus(context.Background(), "ord_s", enums.OrderStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus should fall back, got %v", err)
	}

	list, _ := dual.fallback.List(context.Background())
	if list[0].Status != enums.OrderStatusCompleted {
		t.Fatalf("expected completed in fallback, got %s", list[0].Status)
	}
}

func TestDualUpdateStatusPrimarySuccessSkipsFallback(t *testing.T) {
	primary := &stubStore{}
	dual := newDual(t, primary, false)

	if err := dual.UpdateStatus(context.Background(), "ord_x", enums.OrderStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if len(primary.updates) != 1 || primary.updates[0] != "ord_x" {
		t.Fatalf("expected hosted update, got %+v", primary.updates)
	}
}
