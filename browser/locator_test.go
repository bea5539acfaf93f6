package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSSLocatorPassesThrough(t *testing.T) {
	assert.Equal(t, `input[name="email"]`, CSS(`input[name="email"]`).Selector())
	assert.Equal(t, `button:has-text("Add New")`, CSS(`button:has-text("Add New")`).Selector())
}

func TestTextLocatorIsSubstringMatch(t *testing.T) {
	assert.Equal(t, "text=Bank Details", Text("Bank Details").Selector())
}

func TestTextExactLocatorQuotesTheText(t *testing.T) {
	assert.Equal(t, `text="DEFAULT"`, TextExact("DEFAULT").Selector())
	assert.Equal(t, `text="Surname cannot be blank"`, TextExact("Surname cannot be blank").Selector())
}

func TestTextExactLocatorEscapesEmbeddedQuotes(t *testing.T) {
	assert.Equal(t, `text="say \"hi\""`, TextExact(`say "hi"`).Selector())
}

func TestRoleLocatorWithAndWithoutName(t *testing.T) {
	assert.Equal(t, `role=button[name="Emergency Contacts"]`, Role("button", "Emergency Contacts").Selector())
	assert.Equal(t, "role=dialog", Role("dialog", "").Selector())
}

func TestXPathLocatorAddsEnginePrefix(t *testing.T) {
	assert.Equal(t, "xpath=//button[1]", XPath("//button[1]").Selector())
}

func TestTestIDLocatorBuildsAttributeSelector(t *testing.T) {
	assert.Equal(t, `[data-testid="save-button"]`, TestID("save-button").Selector())
}

func TestStringMatchesSelector(t *testing.T) {
	loc := TextExact("DEFAULT")
	assert.Equal(t, loc.Selector(), loc.String())
}
