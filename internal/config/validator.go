package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("path_prefix", isPathPrefix); err != nil {
		return nil, nil, fmt.Errorf("failed to register path_prefix validation: %w", err)
	}
	if err := validate.RegisterTranslation("path_prefix", trans, func(ut ut.Translator) error {
		return ut.Add("path_prefix", "{0} must be an absolute URL path such as /static/", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("path_prefix", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register path_prefix translation: %w", err)
	}

	return validate, trans, nil
}

// isPathPrefix accepts URL paths that start with '/' and need no escaping,
// because the prefix is written into stored locators verbatim.
func isPathPrefix(fl validator.FieldLevel) bool {
	prefix := fl.Field().String()
	if !strings.HasPrefix(prefix, "/") {
		return false
	}
	return !strings.ContainsAny(prefix, " ?#%\t\n")
}
