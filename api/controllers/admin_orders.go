package controllers

import (
	"net/http"

	"github.com/magieskin/storefront-backend/api/responses"
	"github.com/magieskin/storefront-backend/api/validators"
	"github.com/magieskin/storefront-backend/internal/orders"
	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/enums"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
)

// AdminListOrders returns every order, newest first, for the dashboard.
func AdminListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if list == nil {
			list = []models.Order{}
		}

		responses.WriteSuccess(w, list)
	}
}

// AdminUpdateOrder transitions an order between pending and completed.
func AdminUpdateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload orders.UpdateStatusInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "Invalid update payload").
					WithDetails(map[string]string{"status": payload.Status}))
			return
		}

		if err := svc.UpdateStatus(r.Context(), payload.ID, status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteOK(w)
	}
}
