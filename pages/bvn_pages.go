package pages

import "github.com/candileasing/selfservice-ui-tests/browser"

var (
	bvnInput      = browser.CSS(`input[name="bvn"]`)
	addBVNButton  = browser.CSS(`button[type="submit"]:has-text("Add BVN")`)
	saveBVNButton = browser.CSS(`button[type="submit"]:has-text("Save Changes")`)
)

// AddBVNPage is the add bank verification number form.
type AddBVNPage struct {
	BasePage
}

func NewAddBVNPage(base BasePage) *AddBVNPage {
	return &AddBVNPage{BasePage: base}
}

func (p *AddBVNPage) EnterBVN(bvn string) error {
	return p.Fill(bvnInput, bvn)
}

func (p *AddBVNPage) Submit() error {
	return p.Click(addBVNButton)
}

// EditBVNPage is the edit form for an existing BVN.
type EditBVNPage struct {
	BasePage
}

func NewEditBVNPage(base BasePage) *EditBVNPage {
	return &EditBVNPage{BasePage: base}
}

func (p *EditBVNPage) EnterBVN(bvn string) error {
	return p.Fill(bvnInput, bvn)
}

func (p *EditBVNPage) Submit() error {
	return p.Click(saveBVNButton)
}
