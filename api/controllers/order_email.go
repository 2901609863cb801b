package controllers

import (
	"context"
	"net/http"

	"github.com/magieskin/storefront-backend/api/responses"
	"github.com/magieskin/storefront-backend/api/validators"
	"github.com/magieskin/storefront-backend/internal/orders"
	"github.com/magieskin/storefront-backend/pkg/db/models"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
)

// OrderMailer delivers the order notification pair; satisfied by
// notifications.Mailer.
type OrderMailer interface {
	Deliver(ctx context.Context, order models.Order) error
}

// SendOrderEmail re-sends the order notification pair for an already placed
// order. Unlike checkout, delivery failure here is surfaced to the caller.
func SendOrderEmail(mailer OrderMailer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mailer == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "mailer unavailable"))
			return
		}

		var payload orders.SubmitOrderInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order := models.Order{
			ID:       payload.ID,
			Customer: payload.Customer,
			Items:    payload.Items,
			Date:     payload.Date,
		}
		if payload.Total != nil {
			order.Total = *payload.Total
		}

		if err := mailer.Deliver(r.Context(), order); err != nil {
			if typed := pkgerrors.As(err); typed != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "email send failed"))
			return
		}

		responses.WriteOK(w)
	}
}
