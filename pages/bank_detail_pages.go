package pages

import (
	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/testdata"
)

var (
	bankNameDropdown  = browser.CSS(`.ant-select-selector`)
	bankIDInput       = browser.CSS(`input[name="financialInstitutionId"]`)
	bankSortCodeInput = browser.CSS(`input[name="sortingCode"]`)
	addBankButton     = browser.CSS(`button:has-text("Add Bank")`)
	saveBankButton    = browser.CSS(`button:has-text("Save Changes")`)
)

// AddBankDetailPage is the add bank detail form. The bank name is an ant-design
// select over a long virtualized list of banks.
type AddBankDetailPage struct {
	BasePage
}

func NewAddBankDetailPage(base BasePage) *AddBankDetailPage {
	return &AddBankDetailPage{BasePage: base}
}

func (p *AddBankDetailPage) Open() error {
	return p.Navigate(p.Config().AddBankDetailURL)
}

func (p *AddBankDetailPage) SelectBankName(name string) error {
	return p.SelectOption(bankNameDropdown, name)
}

func (p *AddBankDetailPage) EnterBankID(id string) error {
	return p.Fill(bankIDInput, id)
}

func (p *AddBankDetailPage) EnterSortCode(code string) error {
	return p.Fill(bankSortCodeInput, code)
}

func (p *AddBankDetailPage) Submit() error {
	return p.Click(addBankButton)
}

// FillForm completes the whole add-bank form from the given detail.
func (p *AddBankDetailPage) FillForm(detail testdata.BankDetail) error {
	if err := p.SelectBankName(detail.BankName); err != nil {
		return err
	}
	if err := p.EnterBankID(detail.BankID); err != nil {
		return err
	}
	return p.EnterSortCode(detail.SortCode)
}

// EditBankDetailPage is the edit form for an existing bank detail. Same fields as
// the add form, different submit button.
type EditBankDetailPage struct {
	BasePage
}

func NewEditBankDetailPage(base BasePage) *EditBankDetailPage {
	return &EditBankDetailPage{BasePage: base}
}

func (p *EditBankDetailPage) SelectBankName(name string) error {
	return p.SelectOption(bankNameDropdown, name)
}

func (p *EditBankDetailPage) EnterBankID(id string) error {
	return p.Fill(bankIDInput, id)
}

func (p *EditBankDetailPage) EnterSortCode(code string) error {
	return p.Fill(bankSortCodeInput, code)
}

func (p *EditBankDetailPage) Submit() error {
	return p.Click(saveBankButton)
}
