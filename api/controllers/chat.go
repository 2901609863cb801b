package controllers

import (
	"context"
	"net/http"

	"github.com/magieskin/storefront-backend/api/responses"
	"github.com/magieskin/storefront-backend/api/validators"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
)

// ChatResponder answers one consultant turn; satisfied by chat.Responder.
type ChatResponder interface {
	Respond(ctx context.Context, message string) string
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type chatReply struct {
	Reply string `json:"reply"`
}

// Chat answers a single consultant turn. Provider outages degrade to canned
// replies inside the responder, so this handler only fails on bad input.
func Chat(responder ChatResponder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if responder == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "chat unavailable"))
			return
		}

		var payload chatRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, chatReply{Reply: responder.Respond(r.Context(), payload.Message)})
	}
}
