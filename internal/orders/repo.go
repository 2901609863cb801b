package orders

import (
	"context"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/enums"
	"gorm.io/gorm"
)

type hostedStore struct {
	db *gorm.DB
}

// NewHostedStore builds the order store backed by the hosted database.
func NewHostedStore(db *gorm.DB) Store {
	return &hostedStore{db: db}
}

func (s *hostedStore) Save(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *hostedStore) List(ctx context.Context) ([]models.Order, error) {
	var rows []models.Order
	err := s.db.WithContext(ctx).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus is a partial update touching only the status column. Updating
// an already-transitioned or unknown order is a no-op, matching the hosted
// endpoint's semantics.
func (s *hostedStore) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) error {
	return s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
