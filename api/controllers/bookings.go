package controllers

import (
	"net/http"

	"github.com/hadayashop/storefront-backend/api/responses"
	"github.com/hadayashop/storefront-backend/api/validators"
	bookingsvc "github.com/hadayashop/storefront-backend/internal/bookings"
	"github.com/hadayashop/storefront-backend/pkg/logger"
)

// SubmitBooking accepts a service booking from the services page.
func SubmitBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		var payload bookingsvc.BookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.Submit(r.Context(), sessionID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, confirmation)
	}
}
