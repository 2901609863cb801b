package orders

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/enums"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
	"github.com/magieskin/storefront-backend/pkg/metrics"
	"github.com/magieskin/storefront-backend/pkg/types"
)

// Service defines the order operations exposed to the HTTP layer.
type Service interface {
	Submit(ctx context.Context, input SubmitOrderInput) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) error
}

type service struct {
	store    *Dual
	notifier Notifier
	logg     *logger.Logger
	metrics  *metrics.OrderMetrics
	now      func() time.Time
}

// NewService wires the order service.
func NewService(store *Dual, notifier Notifier, logg *logger.Logger, m *metrics.OrderMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("order store required")
	}
	return &service{
		store:    store,
		notifier: notifier,
		logg:     logg,
		metrics:  m,
		now:      time.Now,
	}, nil
}

// Submit validates, normalizes and persists a checkout submission, then
// triggers the order notification best-effort. Validation rejects the write
// before any storage call happens; notification failure never rolls it back.
func (s *service) Submit(ctx context.Context, input SubmitOrderInput) (*models.Order, error) {
	order, err := s.normalize(input)
	if err != nil {
		s.metrics.IncFailed("validation")
		return nil, err
	}

	start := s.now()
	if err := s.store.Save(ctx, order); err != nil {
		return nil, err
	}
	s.metrics.ObserveSaveDuration(s.now().Sub(start))

	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderID(ctx, order.ID), "order.placed")
	}

	if s.notifier != nil {
		s.notifier.OrderPlaced(ctx, *order)
	}

	return order, nil
}

func (s *service) List(ctx context.Context) ([]models.Order, error) {
	return s.store.List(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]string{"status": string(status)})
	}
	return s.store.UpdateStatus(ctx, id, status)
}

func (s *service) normalize(input SubmitOrderInput) (*models.Order, error) {
	customer := types.Customer{
		Emri:      sanitize(input.Customer.Emri, maxNameLen),
		Mbiemri:   sanitize(input.Customer.Mbiemri, maxNameLen),
		Email:     sanitize(input.Customer.Email, maxEmailLen),
		Adresa:    sanitize(input.Customer.Adresa, maxAddressLen),
		Shteti:    sanitize(input.Customer.Shteti, maxNameLen),
		Qyteti:    sanitize(input.Customer.Qyteti, maxNameLen),
		OtherCity: sanitize(input.Customer.OtherCity, maxNameLen),
	}

	if customer.Emri == "" {
		return nil, invalidField("customer.emri", "first name is required")
	}
	if customer.Mbiemri == "" {
		return nil, invalidField("customer.mbiemri", "last name is required")
	}
	if !validEmail(customer.Email) {
		return nil, invalidField("customer.email", "a valid email is required")
	}
	if len(input.Items) == 0 {
		return nil, invalidField("items", "order items missing")
	}
	if input.Total == nil || *input.Total < 0 {
		return nil, invalidField("total", "total must be a non-negative number")
	}

	items := make([]types.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = item
		// quantity is clamped to a minimum of 1 on every mutation
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
	}

	now := s.now().UTC()
	id := input.ID
	if id == "" {
		id = newOrderID(now)
	}
	date := input.Date
	if date == "" {
		date = now.Format(time.RFC3339)
	}

	return &models.Order{
		ID:       id,
		Customer: customer,
		Items:    items,
		Total:    *input.Total,
		Date:     date,
		Status:   enums.OrderStatusPending,
	}, nil
}

func invalidField(field, message string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, message).
		WithDetails(map[string]string{"field": field})
}

// newOrderID mirrors the storefront's client-side id shape: a base36
// timestamp plus a random suffix.
func newOrderID(now time.Time) string {
	stamp := strconv.FormatInt(now.UnixMilli(), 36)
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("ord_%s_%s", stamp, suffix)
}
