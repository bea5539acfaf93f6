package browser

import (
	"fmt"
	"os"

	"github.com/playwright-community/playwright-go"

	"github.com/candileasing/selfservice-ui-tests/config"
	"github.com/candileasing/selfservice-ui-tests/framework"
)

// Engine owns the playwright runtime and the single browser process used for the
// whole harness run. Sessions created from it are isolated from each other.
type Engine struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	config  *config.Config
}

func NewEngine(cfg *config.Config) *Engine {
	return &Engine{config: cfg}
}

// Start installs the playwright driver if necessary and launches the configured
// browser. Setting PLAYWRIGHT_PREINSTALLED=1 skips the install step, for images that
// bake the browsers in.
func (e *Engine) Start() error {
	if os.Getenv("PLAYWRIGHT_PREINSTALLED") != "1" {
		if err := playwright.Install(); err != nil {
			return fmt.Errorf("could not install playwright browsers: %w", err)
		}
	}
	pw, err := playwright.Run()
	if err != nil {
		// The driver on disk may be from an older version; install and retry once.
		_ = playwright.Install()
		pw, err = playwright.Run()
		if err != nil {
			return fmt.Errorf("could not start playwright after retry: %w", err)
		}
	}
	e.pw = pw

	var browserType playwright.BrowserType
	switch e.config.Browser {
	case config.BrowserFirefox:
		browserType = pw.Firefox
	case config.BrowserWebKit:
		browserType = pw.WebKit
	default:
		browserType = pw.Chromium
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(e.config.Headless),
		SlowMo:   playwright.Float(float64(e.config.SlowMo.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("could not launch %s: %w", e.config.Browser, err)
	}
	e.browser = browser
	return nil
}

// NewSession opens an isolated browser context and page for one test. The logger
// receives console errors and dialog events from the page.
func (e *Engine) NewSession(name string, logger framework.Logger) (*Session, error) {
	if e.browser == nil {
		return nil, fmt.Errorf("browser engine has not been started")
	}
	return newSession(e.browser, e.config, name, logger)
}

// Stop closes the browser and shuts down the playwright runtime.
func (e *Engine) Stop() {
	if e.browser != nil {
		_ = e.browser.Close()
		e.browser = nil
	}
	if e.pw != nil {
		_ = e.pw.Stop()
		e.pw = nil
	}
}
