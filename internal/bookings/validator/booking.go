package validator

import (
	"errors"
	"fmt"
	"regexp"
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"staybook/pkg/sanitizer"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Digits plus common formatting characters. Stricter checks (real
	// region rules) happen in the sanitizer before validation.
	phoneCharsRegex = regexp.MustCompile(`^[0-9\s\-\+\(\)]+$`)
)

const minPhoneDigits = 10

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("full_name", validateFullName); err != nil {
		log.Fatal("Failed to register 'full_name' validator", "error", err)
	}
	if err := v.RegisterValidation("loose_phone", validateLoosePhone); err != nil {
		log.Fatal("Failed to register 'loose_phone' validator", "error", err)
	}

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

// validateFullName requires at least two whitespace-separated words.
func validateFullName(fl validator.FieldLevel) bool {
	return len(strings.Fields(fl.Field().String())) >= 2
}

func validateLoosePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if !phoneCharsRegex.MatchString(phone) {
		return false
	}
	return sanitizer.DigitCount(phone) >= minPhoneDigits
}

func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must have at least %s element(s)", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "uuid4":
			message = fmt.Sprintf("%s must be a valid UUID", err.Field())
		case "full_name":
			message = fmt.Sprintf("%s must contain a first and last name", err.Field())
		case "loose_phone":
			message = fmt.Sprintf("%s must be a phone number with at least %d digits", err.Field(), minPhoneDigits)
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
