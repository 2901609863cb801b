package controllers

import (
	"net/http"

	"github.com/magieskin/storefront-backend/api/responses"
	"github.com/magieskin/storefront-backend/internal/catalog"
)

// ListProducts serves the static catalog the storefront renders.
func ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, catalog.Products())
	}
}
