// Package pages implements the Page Object Model for the CAndILeasing self-service
// portal. BasePage holds the element-interaction layer (waits, retries, failure
// triage); each page object embeds it and exposes one method per user action, with
// its locators declared at the top of the file.
package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/config"
	"github.com/candileasing/selfservice-ui-tests/framework"
)

// Overlays that block pointer events while the portal is loading or re-rendering.
// Interactions wait for these to clear before acting.
var overlayLocators = []browser.Locator{
	browser.CSS(".ant-spin-spinning"),
	browser.CSS(".ant-modal-mask"),
	browser.CSS(".ant-message-notice-wrapper .ant-message-loading"),
}

// Ant-design select and date-picker internals, shared by every page that uses those
// widgets.
var (
	antDropdownOpen    = browser.CSS(".ant-select-dropdown:not(.ant-select-dropdown-hidden)")
	antSelectedItem    = browser.CSS(".ant-select-selection-item")
	antPickerDropdown  = browser.CSS(".ant-picker-dropdown:not(.ant-picker-dropdown-hidden)")
	shortWidgetTimeout = time.Second * 5
)

// ArtifactRecorder receives the paths of failure screenshots so they can be attached
// to the test result. *framework.Context implements it.
type ArtifactRecorder interface {
	AddArtifact(path string)
}

// BasePage is the element-interaction and retry layer that all page objects build on.
// Every interaction resolves a locator, lets the driver wait for actionability,
// retries transient failures (stale elements, intercepted clicks, re-renders), and on
// final failure captures a screenshot and the page state before returning an error.
type BasePage struct {
	driver    browser.Driver
	config    *config.Config
	artifacts *framework.ArtifactStore
	logger    framework.Logger
	recorder  ArtifactRecorder
}

func New(
	driver browser.Driver,
	cfg *config.Config,
	artifacts *framework.ArtifactStore,
	logger framework.Logger,
	recorder ArtifactRecorder,
) BasePage {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return BasePage{
		driver:    driver,
		config:    cfg,
		artifacts: artifacts,
		logger:    logger,
		recorder:  recorder,
	}
}

func (p BasePage) Config() *config.Config {
	return p.config
}

// retry runs the action up to the configured number of attempts, backing off between
// attempts, as long as the failure looks transient. On final failure it performs
// triage and returns a wrapped error.
func (p BasePage) retry(operation string, loc browser.Locator, action func(selector string) error) error {
	selector := loc.Selector()
	var err error
	for attempt := 1; attempt <= p.config.RetryAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(p.config.RetryInterval)
			p.logger.Printf("retrying %s on %s (attempt %d of %d)", operation, loc, attempt, p.config.RetryAttempts)
		}
		err = action(selector)
		if err == nil {
			p.logger.Printf("%s: %s", operation, loc)
			return nil
		}
		if !isTransient(err) {
			break
		}
	}
	return p.triage(operation, loc, err)
}

// isTransient reports whether an interaction failure is the kind that a retry can
// fix: the element detached mid-action because the page re-rendered, or something
// was briefly covering it. Timeouts are not transient; the driver already waited as
// long as the configuration allows.
func isTransient(err error) bool {
	msg := err.Error()
	for _, fragment := range []string{
		"not attached",
		"detached",
		"stale",
		"intercepts pointer events",
		"element is outside of the viewport",
	} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

// triage captures a failure screenshot and logs the page state, then returns the
// wrapped error. Screenshot paths are reported to the artifact recorder so they show
// up with the test result.
func (p BasePage) triage(operation string, loc browser.Locator, err error) error {
	p.logger.Printf("%s failed on %s: %s", operation, loc, err)
	p.logger.Printf("page state: url=%s", p.driver.URL())
	if title, titleErr := p.driver.Title(); titleErr == nil {
		p.logger.Printf("page state: title=%q", title)
	}
	if p.config.ScreenshotOnFailure && p.artifacts != nil {
		path := p.artifacts.FilePath("FAILED_"+operation, "png")
		if shotErr := p.driver.Screenshot(path); shotErr != nil {
			p.logger.Printf("could not capture failure screenshot: %s", shotErr)
		} else {
			p.logger.Printf("failure screenshot: %s", path)
			if p.recorder != nil {
				p.recorder.AddArtifact(path)
			}
		}
	}
	return fmt.Errorf("%s %s: %w", operation, loc, err)
}

// settle waits for any blocking overlay to clear. Overlay state is advisory: a
// timeout here is logged but does not fail the interaction, since the subsequent
// action will produce a better error if the overlay really is stuck.
func (p BasePage) settle() {
	for _, overlay := range overlayLocators {
		if err := p.driver.WaitHidden(overlay.Selector(), p.config.SettleTimeout); err != nil {
			p.logger.Printf("overlay %s still present after %s: %s", overlay, p.config.SettleTimeout, err)
		}
	}
}

// Navigate opens the URL and waits for the page to finish loading.
func (p BasePage) Navigate(url string) error {
	p.logger.Printf("opening %s", url)
	if err := p.driver.Goto(url); err != nil {
		return p.triage("navigate", browser.CSS(url), err)
	}
	return p.WaitLoaded()
}

func (p BasePage) Reload() error {
	p.logger.Printf("reloading page")
	if err := p.driver.Reload(); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return p.WaitLoaded()
}

// WaitLoaded waits for the page to reach network idle.
func (p BasePage) WaitLoaded() error {
	if err := p.driver.WaitLoaded(); err != nil {
		return fmt.Errorf("waiting for page load: %w", err)
	}
	return nil
}

func (p BasePage) URL() string {
	return p.driver.URL()
}

func (p BasePage) Title() (string, error) {
	return p.driver.Title()
}

// TitleContains reports whether the page title contains the given substring.
func (p BasePage) TitleContains(substring string) (bool, error) {
	title, err := p.driver.Title()
	if err != nil {
		return false, fmt.Errorf("reading page title: %w", err)
	}
	return strings.Contains(title, substring), nil
}

func (p BasePage) Click(loc browser.Locator) error {
	p.settle()
	return p.retry("click", loc, p.driver.Click)
}

// ClickText clicks the first element whose text is exactly the given string.
func (p BasePage) ClickText(text string) error {
	return p.Click(browser.TextExact(text))
}

func (p BasePage) Fill(loc browser.Locator, value string) error {
	return p.retry("fill", loc, func(selector string) error {
		return p.driver.Fill(selector, value)
	})
}

func (p BasePage) Press(loc browser.Locator, key string) error {
	return p.retry("press "+key, loc, func(selector string) error {
		return p.driver.Press(selector, key)
	})
}

func (p BasePage) Text(loc browser.Locator) (string, error) {
	var text string
	err := p.retry("read text", loc, func(selector string) error {
		var innerErr error
		text, innerErr = p.driver.Text(selector)
		return innerErr
	})
	return text, err
}

func (p BasePage) Attribute(loc browser.Locator, name string) (string, error) {
	var value string
	err := p.retry("read attribute "+name, loc, func(selector string) error {
		var innerErr error
		value, innerErr = p.driver.Attribute(selector, name)
		return innerErr
	})
	return value, err
}

func (p BasePage) Count(loc browser.Locator) (int, error) {
	return p.driver.Count(loc.Selector())
}

// IsVisible waits up to the given timeout for the element to become visible and
// reports the outcome without failing.
func (p BasePage) IsVisible(loc browser.Locator, timeout time.Duration) bool {
	if err := p.driver.WaitVisible(loc.Selector(), timeout); err != nil {
		p.logger.Printf("element not visible within %s: %s", timeout, loc)
		return false
	}
	return true
}

func (p BasePage) IsEnabled(loc browser.Locator) (bool, error) {
	return p.driver.IsEnabled(loc.Selector())
}

// WaitVisible waits for the element using the configured element timeout, capturing
// failure triage if it never appears.
func (p BasePage) WaitVisible(loc browser.Locator) error {
	if err := p.driver.WaitVisible(loc.Selector(), p.config.ElementTimeout); err != nil {
		return p.triage("wait for element", loc, err)
	}
	return nil
}

func (p BasePage) WaitHidden(loc browser.Locator, timeout time.Duration) error {
	if err := p.driver.WaitHidden(loc.Selector(), timeout); err != nil {
		return p.triage("wait for element to disappear", loc, err)
	}
	return nil
}

// WaitURLContains waits for the page URL to contain the given fragment, using the
// navigation timeout.
func (p BasePage) WaitURLContains(fragment string) error {
	if err := p.driver.WaitURLContains(fragment, p.config.NavigationTimeout); err != nil {
		return p.triage("wait for URL", browser.Text(fragment), err)
	}
	return nil
}

func (p BasePage) ScrollIntoView(loc browser.Locator) error {
	return p.retry("scroll into view", loc, p.driver.ScrollIntoView)
}

func (p BasePage) Hover(loc browser.Locator) error {
	p.settle()
	return p.retry("hover", loc, p.driver.Hover)
}

func (p BasePage) EvalJS(expression string) (interface{}, error) {
	return p.driver.Evaluate(expression)
}

func (p BasePage) ScrollToTop() error {
	_, err := p.driver.Evaluate("window.scrollTo(0, 0)")
	return err
}

func (p BasePage) ScrollToBottom() error {
	_, err := p.driver.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}

// SelectOption drives an ant-design select widget: open the dropdown, find the
// option in the (possibly virtualized) list, click it, and verify the selection
// landed. The widget re-renders its list while filtering, so the whole sequence runs
// inside the retry loop rather than each step individually.
func (p BasePage) SelectOption(trigger browser.Locator, option string) error {
	p.settle()
	var err error
	for attempt := 1; attempt <= p.config.RetryAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(p.config.RetryInterval)
			p.logger.Printf("retrying option select %q (attempt %d of %d)", option, attempt, p.config.RetryAttempts)
		}
		err = p.selectOptionOnce(trigger, option)
		if err == nil {
			p.logger.Printf("selected option %q via %s", option, trigger)
			return nil
		}
	}
	return p.triage("select option "+option, trigger, err)
}

func (p BasePage) selectOptionOnce(trigger browser.Locator, option string) error {
	if err := p.driver.Click(trigger.Selector()); err != nil {
		return fmt.Errorf("opening dropdown: %w", err)
	}
	if err := p.driver.WaitVisible(antDropdownOpen.Selector(), shortWidgetTimeout); err != nil {
		return fmt.Errorf("dropdown did not open: %w", err)
	}

	// Prefer the title attribute, which is set even when the virtualized list
	// truncates the visible text.
	optionSelector := fmt.Sprintf(`.ant-select-item-option[title=%q]`, option)
	if n, err := p.driver.Count(optionSelector); err != nil || n == 0 {
		optionSelector = fmt.Sprintf(`.ant-select-item-option:has-text(%q)`, option)
	}
	if err := p.driver.ScrollIntoView(optionSelector); err != nil {
		return fmt.Errorf("scrolling to option: %w", err)
	}
	if err := p.driver.Click(optionSelector); err != nil {
		return fmt.Errorf("clicking option: %w", err)
	}

	selected, err := p.driver.Text(antSelectedItem.Selector())
	if err != nil {
		return fmt.Errorf("reading selection: %w", err)
	}
	if !strings.Contains(selected, option) {
		return fmt.Errorf("selection shows %q, wanted %q", selected, option)
	}
	return nil
}

// FillDate drives an ant-design date picker: focus the input, type the date, and
// commit it with Enter, waiting for the picker dropdown to close again.
func (p BasePage) FillDate(input browser.Locator, date string) error {
	p.settle()
	var err error
	for attempt := 1; attempt <= p.config.RetryAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(p.config.RetryInterval)
			p.logger.Printf("retrying date entry %q (attempt %d of %d)", date, attempt, p.config.RetryAttempts)
		}
		err = p.fillDateOnce(input, date)
		if err == nil {
			p.logger.Printf("entered date %q via %s", date, input)
			return nil
		}
	}
	return p.triage("fill date "+date, input, err)
}

func (p BasePage) fillDateOnce(input browser.Locator, date string) error {
	selector := input.Selector()
	if err := p.driver.Click(selector); err != nil {
		return fmt.Errorf("focusing date input: %w", err)
	}
	if err := p.driver.Fill(selector, date); err != nil {
		return fmt.Errorf("typing date: %w", err)
	}
	if err := p.driver.Press(selector, "Enter"); err != nil {
		return fmt.Errorf("committing date: %w", err)
	}
	if err := p.driver.WaitHidden(antPickerDropdown.Selector(), shortWidgetTimeout); err != nil {
		return fmt.Errorf("picker did not close: %w", err)
	}
	return nil
}
