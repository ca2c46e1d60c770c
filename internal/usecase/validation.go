package usecase

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indian mobile numbering: exactly 10 digits, first digit 6-9.
	phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// ValidateEnquiryInput checks the intake payload rule by rule in a fixed
// order and reports only the first violation. No side effects.
func ValidateEnquiryInput(input SubmitEnquiryInput) error {
	if len(strings.TrimSpace(input.Name)) < 2 {
		return &DomainError{
			Code:    CodeValidation,
			Message: "Valid name is required (min 2 characters)",
		}
	}
	if !emailRegex.MatchString(strings.TrimSpace(input.Email)) {
		return &DomainError{
			Code:    CodeValidation,
			Message: "Valid email address is required",
		}
	}
	if !phoneRegex.MatchString(stripSpaces(input.Phone)) {
		return &DomainError{
			Code:    CodeValidation,
			Message: "Valid 10-digit Indian mobile number is required",
		}
	}
	if strings.TrimSpace(input.Program) == "" {
		return &DomainError{
			Code:    CodeValidation,
			Message: "Program selection is required",
		}
	}
	// The public forms diverge: some collect city, others state. Either
	// satisfies the location requirement.
	if strings.TrimSpace(input.City) == "" && strings.TrimSpace(input.State) == "" {
		return &DomainError{
			Code:    CodeValidation,
			Message: "City or state selection is required",
		}
	}
	return nil
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
