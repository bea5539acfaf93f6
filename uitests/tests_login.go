package uitests

import (
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candileasing/selfservice-ui-tests/pages"
)

func DoLoginTests(t *T) {
	t.RunTagged("page state", []string{TagSmoke}, func(t *T) {
		login := t.LoginPage()
		require.NoError(t, login.Open())

		assert.True(t, login.FieldsVisible(), "credential inputs should be visible")

		masked, err := login.PasswordMasked()
		require.NoError(t, err)
		assert.True(t, masked, "password input should be masked")

		enabled, err := login.SubmitEnabled()
		require.NoError(t, err)
		assert.True(t, enabled, "submit button should be enabled")
	})

	t.RunTagged("valid credentials", []string{TagSmoke, TagCritical}, func(t *T) {
		dashboard := t.LoginToPortal()
		assert.Contains(t, dashboard.URL(), "self-service")

		require.NoError(t, dashboard.Logout())
	})

	t.RunTagged("wrong username", []string{TagRegression}, func(t *T) {
		t.RequireCredentials()
		login := t.LoginPage()
		require.NoError(t, login.Open())
		require.NoError(t, login.Login(t.Config().WrongUsername, t.Config().Password))

		require.True(t, login.ErrorToastShown(), "an error toast should appear")
		text, err := login.ErrorToastText()
		require.NoError(t, err)
		assert.True(t, strings.Contains(text, pages.ErrInvalidCredentials),
			"toast said %q", text)
	})

	t.RunTagged("wrong password", []string{TagRegression}, func(t *T) {
		t.RequireCredentials()
		login := t.LoginPage()
		require.NoError(t, login.Open())
		require.NoError(t, login.Login(t.Config().Username, t.Config().WrongPassword))

		require.True(t, login.ErrorToastShown(), "an error toast should appear")
	})

	t.RunTagged("missing password", []string{TagRegression}, func(t *T) {
		t.RequireCredentials()
		login := t.LoginPage()
		require.NoError(t, login.Open())
		require.NoError(t, login.EnterEmail(t.Config().Username))
		require.NoError(t, login.Submit())

		assert.True(t, login.HasValidationError(pages.ErrBlankPassword),
			"blank-password validation message should appear")
	})

	t.RunTagged("missing username and password", []string{TagRegression}, func(t *T) {
		login := t.LoginPage()
		require.NoError(t, login.Open())
		require.NoError(t, login.Submit())

		assert.True(t, login.HasValidationError(pages.ErrBlankEmail),
			"blank-email validation message should appear")
		assert.True(t, login.HasValidationError(pages.ErrBlankPassword),
			"blank-password validation message should appear")
	})
}
