package controllers

import (
	"net/http"

	"github.com/magieskin/storefront-backend/api/responses"
	"github.com/magieskin/storefront-backend/api/validators"
	"github.com/magieskin/storefront-backend/internal/orders"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
)

// PlaceOrder handles checkout submissions. The response is a bare
// acknowledgement; the storefront already holds the full order locally.
func PlaceOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload orders.SubmitOrderInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := svc.Submit(r.Context(), payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteOK(w)
	}
}
