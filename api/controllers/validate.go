package controllers

import (
	"net/http"

	"github.com/hadayashop/storefront-backend/api/responses"
	"github.com/hadayashop/storefront-backend/api/validators"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
	"github.com/hadayashop/storefront-backend/pkg/logger"
	"github.com/hadayashop/storefront-backend/pkg/validation"
)

type validateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type validateFieldResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// fieldRules mirrors the inline checks the forms run when a field loses
// focus. Rules run in order; the first failure wins.
var fieldRules = map[string][]validation.Rule{
	"name": {
		{Check: validation.IsPresent, Message: "الاسم الكامل مطلوب"},
	},
	"email": {
		{Check: validation.IsPresent, Message: "البريد الإلكتروني مطلوب"},
		{Check: validation.IsValidEmail, Message: "البريد الإلكتروني غير صحيح"},
	},
	"phone": {
		{Check: validation.IsPresent, Message: "رقم الجوال مطلوب"},
		{Check: validation.IsValidSaudiMobile, Message: "رقم الجوال غير صحيح"},
	},
	"subject": {
		{Check: validation.IsPresent, Message: "موضوع الرسالة مطلوب"},
	},
	"message": {
		{Check: validation.IsPresent, Message: "الرسالة مطلوبة"},
	},
}

// ValidateField runs the blur-time validation for a single form field so
// clients show the same inline messages the submit path enforces.
func ValidateField(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload validateFieldRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rules, ok := fieldRules[payload.Field]
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unknown field").WithDetails(map[string]any{"field": payload.Field}))
			return
		}

		field := validation.NewField(rules...)
		state := field.Blur(payload.Value)

		responses.WriteSuccess(w, validateFieldResponse{
			Field:   payload.Field,
			Valid:   state == validation.StateValid,
			Message: field.Message(),
		})
	}
}
