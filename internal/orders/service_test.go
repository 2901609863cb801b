package orders

import (
	"context"
	"strings"
	"testing"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/enums"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/types"
)

type recordingNotifier struct {
	orders []models.Order
}

func (n *recordingNotifier) OrderPlaced(_ context.Context, order models.Order) {
	n.orders = append(n.orders, order)
}

func newTestService(t *testing.T, primary Store, devMode bool) (Service, *recordingNotifier) {
	t.Helper()
	dual := newDual(t, primary, devMode)
	notifier := &recordingNotifier{}
	svc, err := NewService(dual, notifier, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, notifier
}

func validInput() SubmitOrderInput {
	total := 250.0
	return SubmitOrderInput{
		Customer: types.Customer{
			Emri:    "Arta",
			Mbiemri: "Krasniqi",
			Email:   "arta@example.com",
			Adresa:  "Rruga 1",
			Shteti:  "Kosovo",
			Qyteti:  "Prishtina",
		},
		Items: []types.OrderItem{
			{Product: types.OrderProduct{ID: "p1", Name: "Magie Renewal Serum", Price: 125}, Quantity: 2},
		},
		Total: &total,
	}
}

func TestSubmitPersistsPendingOrderAndNotifies(t *testing.T) {
	primary := &stubStore{}
	svc, notifier := newTestService(t, primary, false)

	order, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if order.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.Total != 250 {
		t.Fatalf("expected total 250, got %v", order.Total)
	}
	if !strings.HasPrefix(order.ID, "ord_") {
		t.Fatalf("expected generated id, got %q", order.ID)
	}
	if order.Date == "" {
		t.Fatal("expected server-side date default")
	}
	if len(primary.saved) != 1 {
		t.Fatalf("expected one hosted write, got %d", len(primary.saved))
	}
	if len(notifier.orders) != 1 || notifier.orders[0].ID != order.ID {
		t.Fatalf("expected notification for placed order, got %+v", notifier.orders)
	}
}

func TestSubmitKeepsClientSuppliedIDAndDate(t *testing.T) {
	svc, _ := newTestService(t, &stubStore{}, false)

	input := validInput()
	input.ID = "ord_custom"
	input.Date = "2026-08-30T10:00:00Z"

	order, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if order.ID != "ord_custom" || order.Date != "2026-08-30T10:00:00Z" {
		t.Fatalf("client id/date not preserved: %+v", order)
	}
}

func TestSubmitClampsQuantity(t *testing.T) {
	svc, _ := newTestService(t, &stubStore{}, false)

	input := validInput()
	input.Items[0].Quantity = 0

	order, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if order.Items[0].Quantity != 1 {
		t.Fatalf("quantity should clamp to 1, got %d", order.Items[0].Quantity)
	}
}

func TestSubmitValidationRejectsBeforeAnyWrite(t *testing.T) {
	negative := -1.0

	cases := []struct {
		name   string
		mutate func(*SubmitOrderInput)
		field  string
	}{
		{"empty first name", func(in *SubmitOrderInput) { in.Customer.Emri = "   " }, "customer.emri"},
		{"empty last name", func(in *SubmitOrderInput) { in.Customer.Mbiemri = "" }, "customer.mbiemri"},
		{"malformed email", func(in *SubmitOrderInput) { in.Customer.Email = "not-an-email" }, "customer.email"},
		{"oversized email", func(in *SubmitOrderInput) {
			in.Customer.Email = strings.Repeat("a", 250) + "@example.com"
		}, "customer.email"},
		{"no items", func(in *SubmitOrderInput) { in.Items = nil }, "items"},
		{"missing total", func(in *SubmitOrderInput) { in.Total = nil }, "total"},
		{"negative total", func(in *SubmitOrderInput) { in.Total = &negative }, "total"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			primary := &stubStore{}
			svc, notifier := newTestService(t, primary, false)

			input := validInput()
			tc.mutate(&input)

			_, err := svc.Submit(context.Background(), input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			details, ok := typed.Details().(map[string]string)
			if !ok || details["field"] != tc.field {
				t.Fatalf("expected field %q in details, got %+v", tc.field, typed.Details())
			}
			if len(primary.saved) != 0 {
				t.Fatal("no write may happen on validation failure")
			}
			if len(notifier.orders) != 0 {
				t.Fatal("no notification may happen on validation failure")
			}
		})
	}
}

func TestSubmitThenListIncludesOrder(t *testing.T) {
	svc, _ := newTestService(t, nil, true) // fallback-only dev mode

	order, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != order.ID {
		t.Fatalf("expected submitted order in list, got %+v", list)
	}
	if list[0].Status != enums.OrderStatusPending {
		t.Fatalf("expected pending, got %s", list[0].Status)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	svc, _ := newTestService(t, &stubStore{}, false)

	if err := svc.UpdateStatus(context.Background(), "", enums.OrderStatusCompleted); err == nil {
		t.Fatal("expected error for empty id")
	}
	if err := svc.UpdateStatus(context.Background(), "ord_1", enums.OrderStatus("shipped")); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestUpdateStatusIdempotent(t *testing.T) {
	svc, _ := newTestService(t, nil, true)

	order, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	for range 2 {
		if err := svc.UpdateStatus(context.Background(), order.ID, enums.OrderStatusCompleted); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
	}

	list, _ := svc.List(context.Background())
	if list[0].Status != enums.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", list[0].Status)
	}
}
