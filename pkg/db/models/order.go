package models

import (
	"time"

	"github.com/magieskin/storefront-backend/pkg/enums"
	"github.com/magieskin/storefront-backend/pkg/types"
)

// Order is the persisted checkout submission. Rows are insert-only; after
// creation only Status ever changes, via the admin dashboard.
type Order struct {
	ID        string            `gorm:"column:id;primaryKey" json:"id"`
	Customer  types.Customer    `gorm:"column:customer;type:jsonb;serializer:json" json:"customer"`
	Items     []types.OrderItem `gorm:"column:items;type:jsonb;serializer:json" json:"items"`
	Total     float64           `gorm:"column:total;not null" json:"total"`
	Date      string            `gorm:"column:date;not null" json:"date"`
	Status    enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'" json:"status"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName keeps the table aligned with the hosted schema.
func (Order) TableName() string {
	return "orders"
}
