package pages

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/testdata"
)

var (
	editOtherNameInput = browser.CSS(`input[name="otherName"]`)
	editJobTitleInput  = browser.CSS(`input[name="jobTitle"]`)
	editSubmitButton   = browser.CSS(`button:has-text("Submit")`)
)

// EditPersonalDataPage is the personal-data edit form reached from the self-service
// dashboard.
type EditPersonalDataPage struct {
	BasePage
}

func NewEditPersonalDataPage(base BasePage) *EditPersonalDataPage {
	return &EditPersonalDataPage{BasePage: base}
}

func (p *EditPersonalDataPage) Open() error {
	return p.Navigate(p.Config().EditPersonalDataURL)
}

func (p *EditPersonalDataPage) EnterOtherName(name string) error {
	return p.Fill(editOtherNameInput, name)
}

func (p *EditPersonalDataPage) EnterJobTitle(title string) error {
	return p.Fill(editJobTitleInput, title)
}

func (p *EditPersonalDataPage) Submit() error {
	return p.Click(editSubmitButton)
}

// FillForm applies the defined fields of the given personal data, leaving absent
// fields untouched.
func (p *EditPersonalDataPage) FillForm(data testdata.PersonalData) error {
	fields := []struct {
		value ldvalue.OptionalString
		loc   browser.Locator
	}{
		{data.OtherName, editOtherNameInput},
		{data.JobTitle, editJobTitleInput},
	}
	for _, f := range fields {
		if f.value.IsDefined() {
			if err := p.Fill(f.loc, f.value.StringValue()); err != nil {
				return err
			}
		}
	}
	return nil
}
