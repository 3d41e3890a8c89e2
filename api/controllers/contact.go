package controllers

import (
	"net/http"

	"github.com/hadayashop/storefront-backend/api/responses"
	"github.com/hadayashop/storefront-backend/api/validators"
	contactsvc "github.com/hadayashop/storefront-backend/internal/contact"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
	"github.com/hadayashop/storefront-backend/pkg/logger"
)

// SubmitContact accepts a contact-page message and returns its ticket.
func SubmitContact(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		var payload contactsvc.ContactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.Submit(r.Context(), sessionID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, receipt)
	}
}

// ContactHours reports whether the shop answers right now.
func ContactHours(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Hours(r.Context()))
	}
}
