package pages

import (
	"time"

	"github.com/candileasing/selfservice-ui-tests/browser"
)

var (
	loginEmailInput        = browser.CSS(`input[name="email"]`)
	loginPasswordInput     = browser.CSS(`input[name="password"]`)
	loginSubmitButton      = browser.CSS(`button[type="submit"][buttontype="primary"]`)
	loginPasswordMasked    = browser.CSS(`input[name="password"][type="password"]`)
	loginErrorToast        = browser.CSS(`div[role="alert"]`)
	loginValidationMessage = browser.CSS(`p.text-xs.mt-1`)
	loginDefaultCompany    = browser.CSS(`div.uppercase:has-text("DEFAULT")`)
)

// Validation and error messages shown by the login form.
const (
	ErrInvalidCredentials = "Invalid username or password"
	ErrBlankPassword      = "Password cannot be blank"
	ErrBlankEmail         = "Email cannot be blank"
)

// DefaultCompanyName is the company tile selected after login in the standard flow.
const DefaultCompanyName = "DEFAULT"

// LoginPage is the login form plus the company-selection list that appears after a
// successful sign-in.
type LoginPage struct {
	BasePage
}

func NewLoginPage(base BasePage) *LoginPage {
	return &LoginPage{BasePage: base}
}

func (p *LoginPage) Open() error {
	return p.Navigate(p.Config().BaseURL)
}

func (p *LoginPage) EnterEmail(email string) error {
	return p.Fill(loginEmailInput, email)
}

func (p *LoginPage) EnterPassword(password string) error {
	return p.Fill(loginPasswordInput, password)
}

func (p *LoginPage) Submit() error {
	return p.Click(loginSubmitButton)
}

// Login fills in the credentials and submits the form.
func (p *LoginPage) Login(email, password string) error {
	if err := p.EnterEmail(email); err != nil {
		return err
	}
	if err := p.EnterPassword(password); err != nil {
		return err
	}
	return p.Submit()
}

// FieldsVisible reports whether both credential inputs are on screen.
func (p *LoginPage) FieldsVisible() bool {
	return p.IsVisible(loginEmailInput, p.Config().ElementTimeout) &&
		p.IsVisible(loginPasswordInput, time.Second*5)
}

// PasswordMasked reports whether the password input hides its contents.
func (p *LoginPage) PasswordMasked() (bool, error) {
	n, err := p.Count(loginPasswordMasked)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (p *LoginPage) SubmitEnabled() (bool, error) {
	return p.IsEnabled(loginSubmitButton)
}

// AwaitCompanyList waits for the post-login company list to appear.
func (p *LoginPage) AwaitCompanyList() error {
	return p.WaitVisible(loginDefaultCompany)
}

// SelectCompany clicks a company tile by its exact name.
func (p *LoginPage) SelectCompany(name string) error {
	return p.ClickText(name)
}

// ErrorToastShown waits for the error toast and reports whether it appeared.
func (p *LoginPage) ErrorToastShown() bool {
	return p.IsVisible(loginErrorToast, p.Config().ElementTimeout)
}

func (p *LoginPage) ErrorToastText() (string, error) {
	return p.Text(loginErrorToast)
}

// HasValidationError reports whether a blank-field validation message with the given
// text is shown under one of the inputs.
func (p *LoginPage) HasValidationError(message string) bool {
	loc := browser.CSS(`p.text-xs.mt-1:has-text("` + message + `")`)
	return p.IsVisible(loc, time.Second*10)
}

// ValidationMessage returns the text of the first visible validation message.
func (p *LoginPage) ValidationMessage() (string, error) {
	return p.Text(loginValidationMessage)
}
