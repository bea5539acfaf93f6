package pages

import (
	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/testdata"
)

var (
	identityTypeDropdown = browser.CSS(`.ant-select-selector`)
	identityIDInput      = browser.CSS(`input[name="identityId"]`)
	identityIssuedDate   = browser.CSS(`label:has-text("Issued Date") + div.ant-picker input`)
	identityExpiryDate   = browser.CSS(`label:has-text("Expiry Date") + div.ant-picker input`)
	addIdentityButton    = browser.CSS(`button:has-text("Add")`)
)

// AddIdentityPage is the add identity form: an ant-design select for the document
// type, an ID input, and two ant-design date pickers.
type AddIdentityPage struct {
	BasePage
}

func NewAddIdentityPage(base BasePage) *AddIdentityPage {
	return &AddIdentityPage{BasePage: base}
}

func (p *AddIdentityPage) SelectIdentityType(identityType string) error {
	return p.SelectOption(identityTypeDropdown, identityType)
}

func (p *AddIdentityPage) EnterIdentityID(id string) error {
	return p.Fill(identityIDInput, id)
}

func (p *AddIdentityPage) EnterIssuedDate(date string) error {
	return p.FillDate(identityIssuedDate, date)
}

func (p *AddIdentityPage) EnterExpiryDate(date string) error {
	return p.FillDate(identityExpiryDate, date)
}

func (p *AddIdentityPage) Submit() error {
	return p.Click(addIdentityButton)
}

// FillForm completes the whole identity form.
func (p *AddIdentityPage) FillForm(identity testdata.Identity) error {
	if err := p.SelectIdentityType(identity.Type); err != nil {
		return err
	}
	if err := p.EnterIdentityID(identity.ID); err != nil {
		return err
	}
	if err := p.EnterIssuedDate(identity.IssuedDate); err != nil {
		return err
	}
	return p.EnterExpiryDate(identity.ExpiryDate)
}
