package orders

import (
	"context"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/enums"
)

// Store defines the persistence surface for orders. Two implementations
// exist: the hosted Postgres store and the local fallback slot. Callers go
// through the Dual wrapper, which applies the fallback policy.
type Store interface {
	Save(ctx context.Context, order *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) error
}

// Notifier is the order-placed notification surface. Implementations never
// propagate send failures to the order path.
type Notifier interface {
	OrderPlaced(ctx context.Context, order models.Order)
}
