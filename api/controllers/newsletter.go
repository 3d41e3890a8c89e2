package controllers

import (
	"net/http"

	"github.com/hadayashop/storefront-backend/api/responses"
	"github.com/hadayashop/storefront-backend/api/validators"
	newslettersvc "github.com/hadayashop/storefront-backend/internal/newsletter"
	"github.com/hadayashop/storefront-backend/pkg/logger"
)

// SubscribeNewsletter handles the footer and blog-page signup forms.
func SubscribeNewsletter(svc newslettersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		var payload newslettersvc.SubscribeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		subscription, err := svc.Subscribe(r.Context(), sessionID, payload.Email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, subscription)
	}
}
