package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// Optional +, digits, 7-15 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	// Integer or decimal, optionally with two decimal places
	salaryRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("salary", ValidSalary)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// ValidSalary validates the coerced string form of a salary amount
func ValidSalary(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Use required when emptiness should fail
	}
	return salaryRegex.MatchString(val)
}
