// Package testdata defines the form-parameter structs used by the self-service
// flows, and generators for the values that must differ between runs.
//
// Optional fields use ldvalue.OptionalString so that a test can distinguish "leave
// this field alone" (undefined) from "clear this field" (defined empty string).
package testdata

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// PersonalData is the personal-data edit form.
type PersonalData struct {
	OtherName ldvalue.OptionalString
	JobTitle  ldvalue.OptionalString
}

// BankDetail is the add/edit bank detail form. All three fields are mandatory in the
// application, so they are plain strings.
type BankDetail struct {
	BankName string
	BankID   string
	SortCode string
}

// EmergencyContact is the add/edit emergency contact form. First name and surname
// are the only fields the application requires.
type EmergencyContact struct {
	FirstName    string
	Surname      string
	OtherName    ldvalue.OptionalString
	MaidenName   ldvalue.OptionalString
	PreviousName ldvalue.OptionalString
	MobileNumber ldvalue.OptionalString
	WorkNumber   ldvalue.OptionalString
	Relationship ldvalue.OptionalString
	Email        ldvalue.OptionalString
	Location     ldvalue.OptionalString
}

// Identity is the add identity form.
type Identity struct {
	Type       string
	ID         string
	IssuedDate string
	ExpiryDate string
}
