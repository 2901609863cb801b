package orders

import (
	"context"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/enums"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
	"github.com/magieskin/storefront-backend/pkg/metrics"
)

// Dual routes between the hosted store and the local fallback slot.
//
// Write policy: the hosted store is authoritative. When a hosted write fails
// (or no hosted store is configured), dev mode lands the order in the
// fallback slot; production surfaces the failure to the caller. Reads and
// status updates fall back on hosted failure regardless of mode.
type Dual struct {
	primary  Store
	fallback *FallbackStore
	devMode  bool
	logg     *logger.Logger
	metrics  *metrics.OrderMetrics
}

// NewDual wires the routing store. primary may be nil when the hosted
// database is unconfigured; fallback is required.
func NewDual(primary Store, fallback *FallbackStore, devMode bool, logg *logger.Logger, m *metrics.OrderMetrics) (*Dual, error) {
	if fallback == nil {
		return nil, pkgerrors.New(pkgerrors.CodeMisconfigured, "fallback store required")
	}
	return &Dual{
		primary:  primary,
		fallback: fallback,
		devMode:  devMode,
		logg:     logg,
		metrics:  m,
	}, nil
}

func (d *Dual) Save(ctx context.Context, order *models.Order) error {
	if d.primary == nil {
		if !d.devMode {
			return pkgerrors.New(pkgerrors.CodeMisconfigured, "order database not configured")
		}
		return d.saveFallback(ctx, order, nil)
	}

	if err := d.primary.Save(ctx, order); err != nil {
		if !d.devMode {
			d.metrics.IncFailed("hosted_write")
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving order")
		}
		return d.saveFallback(ctx, order, err)
	}

	d.metrics.IncPlaced("hosted")
	return nil
}

func (d *Dual) saveFallback(ctx context.Context, order *models.Order, cause error) error {
	if d.logg != nil {
		if cause != nil {
			d.logg.Warn(d.logg.WithField(ctx, "cause", cause.Error()), "order.save.fallback")
		} else {
			d.logg.Warn(ctx, "order.save.fallback")
		}
	}
	if err := d.fallback.Save(ctx, order); err != nil {
		d.metrics.IncFailed("fallback_write")
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving order to fallback")
	}
	d.metrics.IncFallbackWrite()
	d.metrics.IncPlaced("fallback")
	return nil
}

func (d *Dual) List(ctx context.Context) ([]models.Order, error) {
	if d.primary != nil {
		rows, err := d.primary.List(ctx)
		if err == nil {
			return rows, nil
		}
		if d.logg != nil {
			d.logg.Warn(d.logg.WithField(ctx, "cause", err.Error()), "order.list.fallback")
		}
	}
	return d.fallback.List(ctx)
}

func (d *Dual) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) error {
	if d.primary != nil {
		if err := d.primary.UpdateStatus(ctx, id, status); err == nil {
			return nil
		} else if d.logg != nil {
			d.logg.Warn(d.logg.WithField(ctx, "cause", err.Error()), "order.update.fallback")
		}
	}
	return d.fallback.UpdateStatus(ctx, id, status)
}
