package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var entityIDPattern = regexp.MustCompile(`^[a-z]{3}-[a-z0-9-]+$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("not_blank", validateNotBlank)
	validate.RegisterValidation("entity_id", validateEntityID)
	validate.RegisterValidation("operator_id", validateOperatorID)
}

var (
	ErrInvalidEntityID   = errors.New("invalid entity ID format")
	ErrInvalidOperatorID = errors.New("invalid operator ID")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return ValidationErrors{{Message: err.Error()}}
		}
		for _, fe := range fieldErrors {
			validationErrors = append(validationErrors, ValidationError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Value:   fmt.Sprintf("%v", fe.Value()),
				Message: getErrorMessage(fe.Field(), fe.Tag(), fe.Param()),
			})
		}
	}

	return validationErrors
}

// ValidateParams checks that every required action parameter is present
// and not blank. Field names in the result are the parameter keys.
func ValidateParams(required []string, params map[string]string) ValidationErrors {
	var validationErrors ValidationErrors
	for _, key := range required {
		value := params[key]
		if err := validate.Var(value, "not_blank"); err != nil {
			validationErrors = append(validationErrors, ValidationError{
				Field:   key,
				Tag:     "required",
				Value:   value,
				Message: getErrorMessage(key, "required", ""),
			})
		}
	}
	return validationErrors
}

// ValidateOperator rejects empty or malformed operator identities.
func ValidateOperator(operator string) error {
	if err := validate.Var(operator, "required,operator_id"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidOperatorID, operator)
	}
	return nil
}

func getErrorMessage(field, tag, param string) string {
	switch tag {
	case "required", "not_blank":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	case "entity_id":
		return "Invalid ID format"
	case "operator_id":
		return "Invalid operator ID"
	default:
		return fmt.Sprintf("Validation failed for %s", field)
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateEntityID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	return entityIDPattern.MatchString(value)
}

func validateOperatorID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if len(value) > 64 {
		return false
	}
	for _, r := range value {
		if r <= ' ' || r == 0x7f {
			return false
		}
	}
	return true
}
