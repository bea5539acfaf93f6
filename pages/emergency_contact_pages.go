package pages

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/testdata"
)

var (
	contactFirstNameInput    = browser.CSS(`input[name="firstName"]`)
	contactOtherNameInput    = browser.CSS(`input[name="otherName"]`)
	contactSurnameInput      = browser.CSS(`input[name="surname"]`)
	contactMaidenNameInput   = browser.CSS(`input[name="maidenName"]`)
	contactPreviousNameInput = browser.CSS(`input[name="previousName"]`)
	contactMobileNumberInput = browser.CSS(`input[name="mobileNumber"]`)
	contactWorkNumberInput   = browser.CSS(`input[name="workNumber"]`)
	contactRelationshipInput = browser.CSS(`input[name="relationship"]`)
	contactEmailInput        = browser.CSS(`input[name="email"]`)
	contactLocationInput     = browser.CSS(`input[name="location"]`)
	addContactButton         = browser.CSS(`button:has-text("Add Contact")`)
	saveContactButton        = browser.Role("button", "Save Changes")
)

// Blank-field validation messages on the emergency contact form.
const (
	ErrBlankFirstName = "First Name cannot be blank"
	ErrBlankSurname   = "Surname cannot be blank"
)

// contactFormPage is the shared field layout of the add and edit contact forms.
type contactFormPage struct {
	BasePage
}

func (p *contactFormPage) EnterFirstName(name string) error {
	return p.Fill(contactFirstNameInput, name)
}

func (p *contactFormPage) EnterSurname(surname string) error {
	return p.Fill(contactSurnameInput, surname)
}

// FillForm fills the mandatory fields, then every optional field that is defined.
func (p *contactFormPage) FillForm(contact testdata.EmergencyContact) error {
	if err := p.EnterFirstName(contact.FirstName); err != nil {
		return err
	}
	if err := p.EnterSurname(contact.Surname); err != nil {
		return err
	}
	optional := []struct {
		value ldvalue.OptionalString
		loc   browser.Locator
	}{
		{contact.OtherName, contactOtherNameInput},
		{contact.MaidenName, contactMaidenNameInput},
		{contact.PreviousName, contactPreviousNameInput},
		{contact.MobileNumber, contactMobileNumberInput},
		{contact.WorkNumber, contactWorkNumberInput},
		{contact.Relationship, contactRelationshipInput},
		{contact.Email, contactEmailInput},
		{contact.Location, contactLocationInput},
	}
	for _, f := range optional {
		if f.value.IsDefined() {
			if err := p.Fill(f.loc, f.value.StringValue()); err != nil {
				return err
			}
		}
	}
	return nil
}

// HasValidationError reports whether a blank-field validation message with the given
// text is visible.
func (p *contactFormPage) HasValidationError(message string) bool {
	return p.IsVisible(browser.TextExact(message), p.Config().SettleTimeout)
}

// AddEmergencyContactPage is the add emergency contact form.
type AddEmergencyContactPage struct {
	contactFormPage
}

func NewAddEmergencyContactPage(base BasePage) *AddEmergencyContactPage {
	return &AddEmergencyContactPage{contactFormPage{BasePage: base}}
}

func (p *AddEmergencyContactPage) Submit() error {
	return p.Click(addContactButton)
}

// EditEmergencyContactPage is the edit form for an existing emergency contact.
type EditEmergencyContactPage struct {
	contactFormPage
}

func NewEditEmergencyContactPage(base BasePage) *EditEmergencyContactPage {
	return &EditEmergencyContactPage{contactFormPage{BasePage: base}}
}

func (p *EditEmergencyContactPage) Submit() error {
	return p.Click(saveContactButton)
}
