package controllers

import (
	"net/http"

	"github.com/hadayashop/storefront-backend/api/responses"
	"github.com/hadayashop/storefront-backend/api/validators"
	preferencesvc "github.com/hadayashop/storefront-backend/internal/preferences"
	"github.com/hadayashop/storefront-backend/pkg/enums"
	"github.com/hadayashop/storefront-backend/pkg/logger"
)

type setThemeRequest struct {
	Theme string `json:"theme" validate:"required,theme"`
}

// GetTheme returns the session's persisted display preference.
func GetTheme(svc preferencesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		theme, err := svc.Theme(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"theme": theme.String()})
	}
}

// SetTheme stores the session's display preference.
func SetTheme(svc preferencesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		var payload setThemeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		theme := enums.Theme(payload.Theme)
		if err := svc.SetTheme(r.Context(), sessionID, theme); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"theme": theme.String()})
	}
}
