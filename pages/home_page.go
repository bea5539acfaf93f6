package pages

const homeExpectedTitle = "CAndILeasing"

// HomePage is the portal landing page, which doubles as the login page.
type HomePage struct {
	BasePage
}

func NewHomePage(base BasePage) *HomePage {
	return &HomePage{BasePage: base}
}

func (p *HomePage) Open() error {
	return p.Navigate(p.Config().BaseURL)
}

// TitleIsCorrect reports whether the page title identifies the portal.
func (p *HomePage) TitleIsCorrect() (bool, error) {
	return p.TitleContains(homeExpectedTitle)
}
