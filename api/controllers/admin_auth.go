package controllers

import (
	"net/http"

	"github.com/magieskin/storefront-backend/api/middleware"
	"github.com/magieskin/storefront-backend/api/responses"
	"github.com/magieskin/storefront-backend/pkg/config"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
)

// AdminAuth verifies the shared admin secret from the X-Admin-Password
// header. The dashboard calls it once at login and then replays the same
// header on every admin request.
func AdminAuth(cfg config.AdminConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !middleware.VerifyAdminSecret(cfg, r.Header.Get("X-Admin-Password")) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Unauthorized"))
			return
		}
		responses.WriteOK(w)
	}
}
