package pages

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/config"
	"github.com/candileasing/selfservice-ui-tests/framework"
)

// fakeDriver is a scripted stand-in for a browser session. Each interaction is
// recorded as "op selector"; selected operations can be made to fail a set number of
// times (to exercise the retry loop) or permanently.
type fakeDriver struct {
	calls       []string
	failures    map[string]int // "op selector" -> remaining scripted failures
	failErr     error          // error returned for scripted failures
	texts       map[string]string
	counts      map[string]int
	visibleErr  map[string]error
	hiddenErr   map[string]error
	screenshots []string
	// selectionAfterOptionClick is copied into the ant selection item's text when
	// any option element is clicked, simulating the widget committing the choice.
	selectionAfterOptionClick string
}

var errDetached = errors.New("element is not attached to the DOM")

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		failures:   map[string]int{},
		texts:      map[string]string{},
		counts:     map[string]int{},
		visibleErr: map[string]error{},
		hiddenErr:  map[string]error{},
	}
}

func (d *fakeDriver) step(op, selector string) error {
	key := op + " " + selector
	d.calls = append(d.calls, key)
	if remaining := d.failures[key]; remaining > 0 {
		d.failures[key] = remaining - 1
		if d.failErr != nil {
			return d.failErr
		}
		return errDetached
	}
	return nil
}

func (d *fakeDriver) Goto(url string) error { return d.step("goto", url) }

func (d *fakeDriver) Reload() error { return d.step("reload", "") }

func (d *fakeDriver) URL() string { return "https://example.test/personal/self-service" }

func (d *fakeDriver) WaitLoaded() error { return d.step("waitloaded", "") }

func (d *fakeDriver) Title() (string, error) { return "CAndILeasing", nil }

func (d *fakeDriver) Click(selector string) error {
	if err := d.step("click", selector); err != nil {
		return err
	}
	if strings.Contains(selector, ".ant-select-item-option") && d.selectionAfterOptionClick != "" {
		d.texts[".ant-select-selection-item"] = d.selectionAfterOptionClick
	}
	return nil
}

func (d *fakeDriver) Fill(selector, value string) error { return d.step("fill", selector) }

func (d *fakeDriver) Press(selector, key string) error { return d.step("press "+key, selector) }

func (d *fakeDriver) ScrollIntoView(selector string) error { return d.step("scroll", selector) }

func (d *fakeDriver) Hover(selector string) error { return d.step("hover", selector) }

func (d *fakeDriver) Text(selector string) (string, error) {
	if err := d.step("text", selector); err != nil {
		return "", err
	}
	return d.texts[selector], nil
}

func (d *fakeDriver) Attribute(selector, name string) (string, error) {
	if err := d.step("attribute "+name, selector); err != nil {
		return "", err
	}
	return d.texts[selector], nil
}

func (d *fakeDriver) Count(selector string) (int, error) {
	d.calls = append(d.calls, "count "+selector)
	return d.counts[selector], nil
}

func (d *fakeDriver) IsVisible(selector string) (bool, error) { return true, nil }
func (d *fakeDriver) IsEnabled(selector string) (bool, error) { return true, nil }

func (d *fakeDriver) WaitVisible(selector string, timeout time.Duration) error {
	d.calls = append(d.calls, "waitvisible "+selector)
	return d.visibleErr[selector]
}

func (d *fakeDriver) WaitHidden(selector string, timeout time.Duration) error {
	d.calls = append(d.calls, "waithidden "+selector)
	return d.hiddenErr[selector]
}

func (d *fakeDriver) WaitURLContains(fragment string, timeout time.Duration) error {
	return d.step("waiturl", fragment)
}

func (d *fakeDriver) Evaluate(expression string) (interface{}, error) {
	d.calls = append(d.calls, "eval "+expression)
	return nil, nil
}

func (d *fakeDriver) Screenshot(path string) error {
	d.screenshots = append(d.screenshots, path)
	return nil
}

func (d *fakeDriver) callsOf(op string) []string {
	var matched []string
	for _, call := range d.calls {
		if strings.HasPrefix(call, op+" ") {
			matched = append(matched, call)
		}
	}
	return matched
}

type artifactRecorder struct {
	paths []string
}

func (r *artifactRecorder) AddArtifact(path string) {
	r.paths = append(r.paths, path)
}

func newTestPage(t *testing.T, driver browser.Driver) (BasePage, *framework.CapturingLogger, *artifactRecorder) {
	t.Helper()
	cfg := config.Default()
	cfg.RetryAttempts = 3
	cfg.RetryInterval = time.Millisecond
	cfg.SettleTimeout = time.Millisecond * 10
	artifacts, err := framework.NewArtifactStore(t.TempDir())
	require.NoError(t, err)
	logger := &framework.CapturingLogger{}
	recorder := &artifactRecorder{}
	return New(driver, &cfg, artifacts, logger, recorder), logger, recorder
}

func TestClickRetriesTransientFailures(t *testing.T) {
	driver := newFakeDriver()
	target := browser.TextExact("DEFAULT")
	driver.failures["click "+target.Selector()] = 2

	page, _, recorder := newTestPage(t, driver)
	require.NoError(t, page.Click(target))

	assert.Len(t, driver.callsOf("click"), 3)
	assert.Empty(t, driver.screenshots, "no screenshot on eventual success")
	assert.Empty(t, recorder.paths)
}

func TestClickFailureAfterAllRetriesTriggersTriage(t *testing.T) {
	driver := newFakeDriver()
	target := browser.CSS("#save")
	driver.failures["click #save"] = 99

	page, logger, recorder := newTestPage(t, driver)
	err := page.Click(target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "click")
	assert.Contains(t, err.Error(), "#save")

	assert.Len(t, driver.callsOf("click"), 3, "should stop after the configured attempts")
	require.Len(t, driver.screenshots, 1)
	assert.Contains(t, driver.screenshots[0], "FAILED_click")
	assert.Equal(t, driver.screenshots, recorder.paths)

	var messages []string
	for _, m := range logger.Output() {
		messages = append(messages, m.Message)
	}
	assert.Contains(t, strings.Join(messages, "\n"), "url=https://example.test/personal/self-service")
}

func TestNonTransientFailureIsNotRetried(t *testing.T) {
	driver := newFakeDriver()
	driver.failErr = errors.New("Timeout 30000ms exceeded")
	driver.failures["click #save"] = 99

	page, _, _ := newTestPage(t, driver)
	require.Error(t, page.Click(browser.CSS("#save")))
	assert.Len(t, driver.callsOf("click"), 1)
	assert.Len(t, driver.screenshots, 1)
}

func TestClickWaitsForOverlaysFirst(t *testing.T) {
	driver := newFakeDriver()
	page, _, _ := newTestPage(t, driver)
	require.NoError(t, page.Click(browser.CSS("#save")))

	var clickIndex, lastOverlayIndex int
	for i, call := range driver.calls {
		if strings.HasPrefix(call, "waithidden .ant-") {
			lastOverlayIndex = i
		}
		if call == "click #save" {
			clickIndex = i
		}
	}
	assert.Greater(t, clickIndex, lastOverlayIndex, "overlay waits should precede the click")
	assert.NotEmpty(t, driver.callsOf("waithidden"))
}

func TestStuckOverlayIsLoggedButDoesNotFailTheClick(t *testing.T) {
	driver := newFakeDriver()
	driver.hiddenErr[overlayLocators[0].Selector()] = errors.New("Timeout 10ms exceeded")

	page, logger, _ := newTestPage(t, driver)
	require.NoError(t, page.Click(browser.CSS("#save")))

	var sawOverlayMessage bool
	for _, m := range logger.Output() {
		if strings.Contains(m.Message, "overlay") {
			sawOverlayMessage = true
		}
	}
	assert.True(t, sawOverlayMessage)
}

func TestTextRetriesUntilElementSettles(t *testing.T) {
	driver := newFakeDriver()
	toast := browser.CSS(`div[role="alert"]`)
	driver.texts[toast.Selector()] = "Invalid username or password"
	driver.failures["text "+toast.Selector()] = 1

	page, _, _ := newTestPage(t, driver)
	text, err := page.Text(toast)
	require.NoError(t, err)
	assert.Equal(t, "Invalid username or password", text)
	assert.Len(t, driver.callsOf("text"), 2)
}

func TestIsVisibleReportsFalseInsteadOfFailing(t *testing.T) {
	driver := newFakeDriver()
	driver.visibleErr["#ghost"] = errors.New("Timeout 10ms exceeded")

	page, _, _ := newTestPage(t, driver)
	assert.False(t, page.IsVisible(browser.CSS("#ghost"), time.Millisecond*10))
	assert.Empty(t, driver.screenshots)
}

func TestSelectOptionDrivesTheFullDance(t *testing.T) {
	driver := newFakeDriver()
	driver.counts[`.ant-select-item-option[title="GLOBUS BANK"]`] = 1
	driver.selectionAfterOptionClick = "GLOBUS BANK"

	page, _, _ := newTestPage(t, driver)
	require.NoError(t, page.SelectOption(browser.CSS(".ant-select-selector"), "GLOBUS BANK"))

	expectedOrder := []string{
		"click .ant-select-selector",
		"waitvisible " + antDropdownOpen.Selector(),
		`scroll .ant-select-item-option[title="GLOBUS BANK"]`,
		`click .ant-select-item-option[title="GLOBUS BANK"]`,
		"text " + antSelectedItem.Selector(),
	}
	assertCallsInOrder(t, driver.calls, expectedOrder)
}

func TestSelectOptionFallsBackToTextMatch(t *testing.T) {
	driver := newFakeDriver()
	// no option advertises the title attribute
	driver.selectionAfterOptionClick = "GLOBUS BANK"

	page, _, _ := newTestPage(t, driver)
	require.NoError(t, page.SelectOption(browser.CSS(".ant-select-selector"), "GLOBUS BANK"))

	assert.Contains(t, driver.calls, `click .ant-select-item-option:has-text("GLOBUS BANK")`)
}

func TestSelectOptionRetriesWhenSelectionDoesNotLand(t *testing.T) {
	driver := newFakeDriver()
	driver.counts[`.ant-select-item-option[title="GLOBUS BANK"]`] = 1
	driver.texts[antSelectedItem.Selector()] = "FIRST BANK" // never becomes the wanted value

	page, _, recorder := newTestPage(t, driver)
	err := page.SelectOption(browser.CSS(".ant-select-selector"), "GLOBUS BANK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GLOBUS BANK")

	assert.Len(t, driver.callsOf("text"), 3, "the whole dance should repeat per attempt")
	assert.Len(t, recorder.paths, 1)
}

func TestFillDateCommitsAndWaitsForPickerToClose(t *testing.T) {
	driver := newFakeDriver()
	input := browser.CSS(`label:has-text("Issued Date") + div.ant-picker input`)

	page, _, _ := newTestPage(t, driver)
	require.NoError(t, page.FillDate(input, "2022-01-10"))

	assertCallsInOrder(t, driver.calls, []string{
		"click " + input.Selector(),
		"fill " + input.Selector(),
		"press Enter " + input.Selector(),
		"waithidden " + antPickerDropdown.Selector(),
	})
}

func TestFillDateRetriesWhenPickerStaysOpen(t *testing.T) {
	driver := newFakeDriver()
	input := browser.CSS("div.ant-picker input")
	driver.hiddenErr[antPickerDropdown.Selector()] = errors.New("Timeout 10ms exceeded")

	page, _, _ := newTestPage(t, driver)
	err := page.FillDate(input, "2022-01-10")
	require.Error(t, err)
	assert.Len(t, driver.callsOf("press Enter"), 3)
	assert.Len(t, driver.screenshots, 1)
}

func TestNavigateWaitsForPageLoad(t *testing.T) {
	driver := newFakeDriver()
	page, _, _ := newTestPage(t, driver)
	require.NoError(t, page.Navigate("https://example.test/"))

	assertCallsInOrder(t, driver.calls, []string{
		"goto https://example.test/",
		"waitloaded ",
	})
}

func TestTitleContains(t *testing.T) {
	driver := newFakeDriver()
	page, _, _ := newTestPage(t, driver)

	ok, err := page.TitleContains("CAndILeasing")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = page.TitleContains("SomethingElse")
	require.NoError(t, err)
	assert.False(t, ok)
}

// assertCallsInOrder checks that the expected calls appear in calls in the given
// relative order, ignoring unrelated calls in between.
func assertCallsInOrder(t *testing.T, calls []string, expected []string) {
	t.Helper()
	i := 0
	for _, call := range calls {
		if i < len(expected) && call == expected[i] {
			i++
		}
	}
	require.Equal(t, len(expected), i,
		"wanted calls in order %v, got %v", expected, calls)
}
