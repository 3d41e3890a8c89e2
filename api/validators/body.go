package validators

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hadayashop/storefront-backend/pkg/enums"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
	"github.com/hadayashop/storefront-backend/pkg/validation"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})

	// Form-shape rules shared with the field-level validators.
	mustRegister(v, "email_shape", func(fl validator.FieldLevel) bool {
		return validation.IsValidEmail(fl.Field().String())
	})
	mustRegister(v, "saudi_mobile", func(fl validator.FieldLevel) bool {
		return validation.IsValidSaudiMobile(fl.Field().String())
	})
	mustRegister(v, "service_type", func(fl validator.FieldLevel) bool {
		return enums.ServiceType(fl.Field().String()).IsValid()
	})
	mustRegister(v, "inquiry_type", func(fl validator.FieldLevel) bool {
		return enums.InquiryType(fl.Field().String()).IsValid()
	})
	mustRegister(v, "theme", func(fl validator.FieldLevel) bool {
		return enums.Theme(fl.Field().String()).IsValid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body").WithDetails(map[string]any{"error": err.Error()})
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

// validationMessage renders the field messages the storefront shows inline,
// in the shopper's language.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "هذا الحقل مطلوب"
	case "email_shape":
		return "البريد الإلكتروني غير صحيح"
	case "saudi_mobile":
		return "رقم الجوال غير صحيح"
	case "service_type":
		return "نوع الخدمة غير معروف"
	case "inquiry_type":
		return "نوع الاستفسار غير معروف"
	case "theme":
		return "المظهر غير معروف"
	case "datetime":
		return "التاريخ غير صحيح"
	case "min":
		return fmt.Sprintf("يجب ألا يقل عن %s", fe.Param())
	case "max":
		return fmt.Sprintf("يجب ألا يزيد عن %s", fe.Param())
	}
	return "قيمة غير صحيحة"
}
