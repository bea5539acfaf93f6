package browser

import "fmt"

type locatorStrategy int

const (
	strategyCSS locatorStrategy = iota
	strategyText
	strategyTextExact
	strategyRole
	strategyXPath
	strategyTestID
)

// Locator identifies a UI element by one of several strategies. It resolves to a
// playwright selector string via Selector(). Page objects declare their locators as
// package-level values and pass them to the base page operations.
type Locator struct {
	strategy locatorStrategy
	value    string
	name     string
}

// CSS locates an element with a CSS selector. Playwright extensions such as
// :has-text() are allowed.
func CSS(selector string) Locator {
	return Locator{strategy: strategyCSS, value: selector}
}

// Text locates an element containing the given text (substring, case-insensitive).
func Text(text string) Locator {
	return Locator{strategy: strategyText, value: text}
}

// TextExact locates an element whose text is exactly the given string.
func TextExact(text string) Locator {
	return Locator{strategy: strategyTextExact, value: text}
}

// Role locates an element by ARIA role and accessible name.
func Role(role, name string) Locator {
	return Locator{strategy: strategyRole, value: role, name: name}
}

// XPath locates an element with an XPath expression.
func XPath(expression string) Locator {
	return Locator{strategy: strategyXPath, value: expression}
}

// TestID locates an element by its data-testid attribute.
func TestID(id string) Locator {
	return Locator{strategy: strategyTestID, value: id}
}

// Selector resolves the locator to a playwright selector string.
func (l Locator) Selector() string {
	switch l.strategy {
	case strategyText:
		return "text=" + l.value
	case strategyTextExact:
		return fmt.Sprintf("text=%q", l.value)
	case strategyRole:
		if l.name == "" {
			return "role=" + l.value
		}
		return fmt.Sprintf("role=%s[name=%q]", l.value, l.name)
	case strategyXPath:
		return "xpath=" + l.value
	case strategyTestID:
		return fmt.Sprintf("[data-testid=%q]", l.value)
	default:
		return l.value
	}
}

// String is used in log and error messages.
func (l Locator) String() string {
	return l.Selector()
}
