package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/candileasing/selfservice-ui-tests/config"
	"github.com/candileasing/selfservice-ui-tests/framework"
)

// Session is one test's isolated browser context and page. It implements Driver.
type Session struct {
	context playwright.BrowserContext
	page    playwright.Page
	config  *config.Config
	logger  framework.Logger
}

func newSession(browser playwright.Browser, cfg *config.Config, name string, logger framework.Logger) (*Session, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	options := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  cfg.ViewportWidth,
			Height: cfg.ViewportHeight,
		},
	}
	if cfg.RecordVideo {
		options.RecordVideo = &playwright.RecordVideo{Dir: cfg.VideoDir}
	}
	context, err := browser.NewContext(options)
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}
	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	page.SetDefaultTimeout(float64(cfg.ElementTimeout.Milliseconds()))
	page.SetDefaultNavigationTimeout(float64(cfg.NavigationTimeout.Milliseconds()))

	s := &Session{context: context, page: page, config: cfg, logger: logger}
	pageLogger := framework.LoggerWithPrefix(logger, "["+name+"] ")
	page.OnConsole(func(msg playwright.ConsoleMessage) {
		if msg.Type() == "error" {
			pageLogger.Printf("console error: %s", msg.Text())
		}
	})
	page.OnDialog(func(dialog playwright.Dialog) {
		pageLogger.Printf("dismissing unexpected %s dialog: %s", dialog.Type(), dialog.Message())
		_ = dialog.Dismiss()
	})
	return s, nil
}

// Page exposes the underlying playwright page for cases the Driver surface does not
// cover, such as the browser-gated integration tests.
func (s *Session) Page() playwright.Page {
	return s.page
}

func (s *Session) Close() {
	if s.page != nil {
		_ = s.page.Close()
	}
	if s.context != nil {
		_ = s.context.Close()
	}
}

func (s *Session) Goto(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	return err
}

func (s *Session) Reload() error {
	_, err := s.page.Reload()
	return err
}

func (s *Session) URL() string {
	return s.page.URL()
}

func (s *Session) Title() (string, error) {
	return s.page.Title()
}

func (s *Session) WaitLoaded() error {
	return s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}

// first narrows a selector to its first match. The page layer's locators frequently
// match repeated UI (lists of records, repeated Edit buttons), where the original
// suite always acted on the first one.
func (s *Session) first(selector string) playwright.Locator {
	return s.page.Locator(selector).First()
}

func (s *Session) Click(selector string) error {
	return s.first(selector).Click()
}

func (s *Session) Fill(selector, value string) error {
	return s.first(selector).Fill(value)
}

func (s *Session) Press(selector, key string) error {
	return s.first(selector).Press(key)
}

func (s *Session) Text(selector string) (string, error) {
	return s.first(selector).InnerText()
}

func (s *Session) Attribute(selector, name string) (string, error) {
	value, err := s.first(selector).GetAttribute(name)
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Session) Count(selector string) (int, error) {
	return s.page.Locator(selector).Count()
}

func (s *Session) IsVisible(selector string) (bool, error) {
	return s.first(selector).IsVisible()
}

func (s *Session) IsEnabled(selector string) (bool, error) {
	return s.first(selector).IsEnabled()
}

func (s *Session) ScrollIntoView(selector string) error {
	return s.first(selector).ScrollIntoViewIfNeeded()
}

func (s *Session) Hover(selector string) error {
	return s.first(selector).Hover()
}

func (s *Session) WaitVisible(selector string, timeout time.Duration) error {
	return s.first(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (s *Session) WaitHidden(selector string, timeout time.Duration) error {
	return s.first(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (s *Session) WaitURLContains(fragment string, timeout time.Duration) error {
	return s.page.WaitForURL("**"+fragment+"**", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (s *Session) Evaluate(expression string) (interface{}, error) {
	return s.page.Evaluate(expression)
}

func (s *Session) Screenshot(path string) error {
	_, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}
