package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// User / profile fields
	"Username":  "Username",
	"Email":     "Email",
	"Password":  "Password",
	"FirstName": "First name",
	"LastName":  "Last name",
	"Gender":    "Gender",
	"Mobile":    "Mobile number",
	"Location":  "Location",
	"UserTitle": "Title",
	"Bio":       "Bio",
	"Skills":    "Skills",
	"Linkedin":  "LinkedIn URL",
	"Github":    "GitHub URL",

	// Job posting fields
	"Title":        "Job title",
	"Company":      "Company",
	"Setup":        "Work setup",
	"Type":         "Job type",
	"MinSalary":    "Minimum salary",
	"MaxSalary":    "Maximum salary",
	"Description":  "Job description",
	"Requirements": "Job requirements",
	"Benefits":     "Job benefits",

	// Application fields
	"Status": "Application status",
	"JobID":  "Job",
}

// FormatValidationErrors converts validator.ValidationErrors to user-facing messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)

	case "url":
		return fmt.Sprintf("%s is not a valid URL", label)

	case "valid_phone":
		return fmt.Sprintf("%s is not a valid phone number (7-15 digits, optional +)", label)

	case "salary":
		return fmt.Sprintf("%s must be a numeric amount", label)

	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
