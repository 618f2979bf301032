package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError reports a locally rejected input, before any request is
// sent to the backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	if err := validate.RegisterTranslation("eqfield", trans, func(ut ut.Translator) error {
		return ut.Add("eqfield", "Passwords do not match", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("eqfield")
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register eqfield translation: %w", err)
	}

	return validate, trans, nil
}

// validateProfile checks a registration profile and converts validator
// failures into a single human-readable ValidationError.
func validateProfile(profile Profile) error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator > %w", err)
	}

	err = validate.Struct(profile)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct > %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldError.Translate(trans))
	}
	return &ValidationError{Message: strings.Join(messages, "; ")}
}
