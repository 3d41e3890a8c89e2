package controllers

import (
	"net/http"

	"github.com/hadayashop/storefront-backend/api/responses"
	"github.com/hadayashop/storefront-backend/api/validators"
	"github.com/hadayashop/storefront-backend/internal/analytics"
	"github.com/hadayashop/storefront-backend/pkg/logger"
)

// SocialLink is one entry in the contact page's follow-us row.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

var socialLinks = []SocialLink{
	{Platform: "فيسبوك", URL: "https://facebook.com/hadiya"},
	{Platform: "إنستغرام", URL: "https://instagram.com/hadiya"},
	{Platform: "تويتر", URL: "https://twitter.com/hadiya"},
	{Platform: "يوتيوب", URL: "https://youtube.com/hadiya"},
}

// ListSocialLinks serves the social profiles.
func ListSocialLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, socialLinks)
	}
}

type trackEventRequest struct {
	Category string `json:"category" validate:"required"`
	Action   string `json:"action" validate:"required"`
	Label    string `json:"label"`
}

// TrackEvent records client-side interactions the backend cannot observe,
// like social clicks and tel: taps.
func TrackEvent(tracker analytics.Tracker, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tracker == nil {
			tracker = analytics.Noop()
		}

		var payload trackEventRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tracker.Track(r.Context(), analytics.Event{
			Category: payload.Category,
			Action:   payload.Action,
			Label:    payload.Label,
		})
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "recorded"})
	}
}
