package uitests

import (
	"github.com/stretchr/testify/require"

	"github.com/candileasing/selfservice-ui-tests/testdata"
)

func DoIdentityTests(t *T) {
	t.RunTagged("add identity", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.OpenIdentityTab())
		require.NoError(t, dashboard.ClickAddIdentity())

		add := t.AddIdentityPage()
		require.NoError(t, add.FillForm(testdata.Identity{
			Type:       t.Config().Data.IdentityType,
			ID:         t.Config().Data.IdentityID,
			IssuedDate: t.Config().Data.IssuedDate,
			ExpiryDate: t.Config().Data.ExpiryDate,
		}))
		require.NoError(t, add.Submit())
		require.NoError(t, add.WaitLoaded())
	})
}
