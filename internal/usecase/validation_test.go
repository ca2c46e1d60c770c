package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() SubmitEnquiryInput {
	return SubmitEnquiryInput{
		Name:    "Jo Doe",
		Email:   "jo@x.com",
		Phone:   "9876543210",
		Program: "MBA",
		City:    "Delhi",
	}
}

func TestValidateEnquiryInputValid(t *testing.T) {
	assert.NoError(t, ValidateEnquiryInput(validInput()))
}

func TestValidateEnquiryInputStateOnly(t *testing.T) {
	input := validInput()
	input.City = ""
	input.State = "Punjab"
	assert.NoError(t, ValidateEnquiryInput(input))
}

func TestValidateEnquiryInputRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*SubmitEnquiryInput)
		message string
	}{
		{"empty name", func(i *SubmitEnquiryInput) { i.Name = "" }, "Valid name is required (min 2 characters)"},
		{"one-char name", func(i *SubmitEnquiryInput) { i.Name = "J" }, "Valid name is required (min 2 characters)"},
		{"whitespace name", func(i *SubmitEnquiryInput) { i.Name = " J " }, "Valid name is required (min 2 characters)"},
		{"empty email", func(i *SubmitEnquiryInput) { i.Email = "" }, "Valid email address is required"},
		{"no at sign", func(i *SubmitEnquiryInput) { i.Email = "jo.x.com" }, "Valid email address is required"},
		{"no tld", func(i *SubmitEnquiryInput) { i.Email = "jo@xcom" }, "Valid email address is required"},
		{"empty phone", func(i *SubmitEnquiryInput) { i.Phone = "" }, "Valid 10-digit Indian mobile number is required"},
		{"bad leading digit", func(i *SubmitEnquiryInput) { i.Phone = "1234567890" }, "Valid 10-digit Indian mobile number is required"},
		{"too short", func(i *SubmitEnquiryInput) { i.Phone = "987654321" }, "Valid 10-digit Indian mobile number is required"},
		{"too long", func(i *SubmitEnquiryInput) { i.Phone = "98765432101" }, "Valid 10-digit Indian mobile number is required"},
		{"empty program", func(i *SubmitEnquiryInput) { i.Program = "   " }, "Program selection is required"},
		{"no location", func(i *SubmitEnquiryInput) { i.City = ""; i.State = "  " }, "City or state selection is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			err := ValidateEnquiryInput(input)

			assert.Error(t, err)
			assert.True(t, IsDomainError(err))
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

// Phone whitespace is stripped before the shape check, matching what the
// public forms send.
func TestValidateEnquiryInputPhoneWithSpaces(t *testing.T) {
	input := validInput()
	input.Phone = "98765 43210"
	assert.NoError(t, ValidateEnquiryInput(input))
}

// Rules are checked in a fixed order and only the first violation is
// reported: a payload failing everything reports the name rule.
func TestValidateEnquiryInputShortCircuit(t *testing.T) {
	err := ValidateEnquiryInput(SubmitEnquiryInput{})

	assert.Error(t, err)
	assert.Equal(t, "Valid name is required (min 2 characters)", err.Error())
}
