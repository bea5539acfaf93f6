package uitests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoHomeTests(t *T) {
	t.RunTagged("portal loads", []string{TagSmoke}, func(t *T) {
		home := t.HomePage()
		require.NoError(t, home.Open())

		ok, err := home.TitleIsCorrect()
		require.NoError(t, err)
		assert.True(t, ok, "page title should identify the portal")
	})

	t.RunTagged("login form is presented", []string{TagSmoke}, func(t *T) {
		login := t.LoginPage()
		require.NoError(t, login.Open())
		assert.True(t, login.FieldsVisible(), "email and password inputs should be visible")
	})
}
