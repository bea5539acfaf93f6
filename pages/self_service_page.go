package pages

import (
	"errors"

	"github.com/candileasing/selfservice-ui-tests/browser"
)

var errEditDisabled = errors.New("button is not enabled")

var (
	selfServicePersonalName = browser.CSS(`span.text-dark0b.font-\[400\].text-\[14px\]`)
	selfServiceAvatarMenu   = browser.CSS(`span.ant-avatar.ant-avatar-circle.ant-dropdown-trigger`)
	selfServiceLogoutLink   = browser.CSS(`p.text-danger:has-text("Logout")`)
	selfServiceEditButton   = browser.CSS(`button:has-text("Edit")`)

	selfServiceBankDetailsTab  = browser.CSS(`button:has-text("Bank Details")`)
	selfServiceAddBankButton   = browser.CSS(`button.px-4.py-1.text-\[\#4F5E71\].bg-white.border-\[1px\]`)
	selfServiceEditBankButton  = browser.CSS(`button:has(svg path[stroke='#5141A4'])`)
	selfServiceContactsTab     = browser.Role("button", "Emergency Contacts")
	selfServiceAddNewButton    = browser.CSS(`button[type="button"]:has-text("Add New")`)
	selfServiceEditContactLink = browser.CSS(`div.flex.items-center:has(svg) >> text=Edit`)
	selfServiceBVNTab          = browser.CSS(`button:has-text("BVN")`)
	selfServiceEditBVNButton   = browser.CSS(`button:has(svg path[d^='M7.3335'])`)
	selfServiceIdentityTab     = browser.CSS(`button:has-text("Identity")`)
)

// SelfServicePage is the employee self-service dashboard with its personal-data
// summary and the Bank Details / Emergency Contacts / BVN / Identity tabs.
type SelfServicePage struct {
	BasePage
}

func NewSelfServicePage(base BasePage) *SelfServicePage {
	return &SelfServicePage{BasePage: base}
}

func (p *SelfServicePage) Open() error {
	return p.Navigate(p.Config().SelfServiceURL)
}

// VerifyLoaded waits until the dashboard URL and the personal-name header are both
// present.
func (p *SelfServicePage) VerifyLoaded() error {
	if err := p.WaitURLContains("self-service"); err != nil {
		return err
	}
	return p.WaitVisible(selfServicePersonalName)
}

// Logout opens the avatar menu and clicks the logout link.
func (p *SelfServicePage) Logout() error {
	if err := p.Click(selfServiceAvatarMenu); err != nil {
		return err
	}
	return p.Click(selfServiceLogoutLink)
}

// ClickEditPersonalData opens the personal-data edit form and waits for the
// navigation to finish.
func (p *SelfServicePage) ClickEditPersonalData() error {
	if err := p.ScrollIntoView(selfServiceEditButton); err != nil {
		return err
	}
	enabled, err := p.IsEnabled(selfServiceEditButton)
	if err != nil {
		return err
	}
	if !enabled {
		return p.triage("click edit personal data", selfServiceEditButton,
			errEditDisabled)
	}
	if err := p.Click(selfServiceEditButton); err != nil {
		return err
	}
	return p.WaitURLContains("edit")
}

func (p *SelfServicePage) OpenBankDetailsTab() error {
	return p.Click(selfServiceBankDetailsTab)
}

func (p *SelfServicePage) ClickAddBankDetail() error {
	return p.Click(selfServiceAddBankButton)
}

func (p *SelfServicePage) ClickEditBankDetail() error {
	return p.Click(selfServiceEditBankButton)
}

func (p *SelfServicePage) OpenEmergencyContactsTab() error {
	return p.Click(selfServiceContactsTab)
}

func (p *SelfServicePage) ClickAddEmergencyContact() error {
	return p.Click(selfServiceAddNewButton)
}

func (p *SelfServicePage) ClickEditEmergencyContact() error {
	return p.Click(selfServiceEditContactLink)
}

func (p *SelfServicePage) OpenBVNTab() error {
	return p.Click(selfServiceBVNTab)
}

func (p *SelfServicePage) ClickAddBVN() error {
	return p.Click(selfServiceAddNewButton)
}

func (p *SelfServicePage) ClickEditBVN() error {
	return p.Click(selfServiceEditBVNButton)
}

func (p *SelfServicePage) OpenIdentityTab() error {
	return p.Click(selfServiceIdentityTab)
}

func (p *SelfServicePage) ClickAddIdentity() error {
	return p.Click(selfServiceAddNewButton)
}
