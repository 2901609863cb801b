package middleware

import (
	"net/http"

	"github.com/magieskin/storefront-backend/api/responses"
	"github.com/magieskin/storefront-backend/pkg/config"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
	"github.com/magieskin/storefront-backend/pkg/security"
)

const adminPasswordHeader = "X-Admin-Password"

// VerifyAdminSecret checks a submitted admin password against the configured
// secret. The hashed form wins when both are set; an unconfigured secret
// rejects everything.
func VerifyAdminSecret(cfg config.AdminConfig, candidate string) bool {
	if candidate == "" || !cfg.Configured() {
		return false
	}
	if cfg.PasswordHash != "" {
		ok, err := security.VerifySecret(candidate, cfg.PasswordHash)
		return err == nil && ok
	}
	return security.ConstantTimeEquals(candidate, cfg.Password)
}

// RequireAdmin gates the admin dashboard endpoints on the shared-secret
// header. Failures are logged but never say whether the secret is wrong or
// simply unset.
func RequireAdmin(cfg config.AdminConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if !VerifyAdminSecret(cfg, r.Header.Get(adminPasswordHeader)) {
				if logg != nil {
					logg.Warn(logg.WithClientIP(ctx, clientIP(r)), "admin.unauthorized")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Unauthorized"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
