// Package browser wraps the playwright-go driver behind the narrow surface that the
// page-object layer consumes. One Engine (a browser process) is started per harness
// run; each test gets its own Session (an isolated browser context and page).
package browser

import "time"

// Driver is the interaction surface that page objects use. *Session implements it
// against a real browser; unit tests for the page layer substitute a scripted fake.
//
// All selector arguments are playwright selector strings, normally produced by
// Locator.Selector().
type Driver interface {
	Goto(url string) error
	Reload() error
	URL() string
	Title() (string, error)
	// WaitLoaded blocks until the page reaches network idle.
	WaitLoaded() error

	Click(selector string) error
	Fill(selector, value string) error
	Press(selector, key string) error
	Text(selector string) (string, error)
	Attribute(selector, name string) (string, error)
	Count(selector string) (int, error)
	IsVisible(selector string) (bool, error)
	IsEnabled(selector string) (bool, error)
	ScrollIntoView(selector string) error
	Hover(selector string) error

	WaitVisible(selector string, timeout time.Duration) error
	WaitHidden(selector string, timeout time.Duration) error
	WaitURLContains(fragment string, timeout time.Duration) error

	Evaluate(expression string) (interface{}, error)
	Screenshot(path string) error
}
