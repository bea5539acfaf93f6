package uitests

import (
	"github.com/stretchr/testify/require"
)

func DoBVNTests(t *T) {
	t.RunTagged("add BVN", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.OpenBVNTab())
		require.NoError(t, dashboard.ClickAddBVN())

		add := t.AddBVNPage()
		require.NoError(t, add.EnterBVN(t.Config().Data.BVN))
		require.NoError(t, add.Submit())
		require.NoError(t, add.WaitLoaded())
	})

	t.RunTagged("edit BVN", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.OpenBVNTab())
		require.NoError(t, dashboard.ClickEditBVN())

		edit := t.EditBVNPage()
		require.NoError(t, edit.EnterBVN(t.Config().Data.AlternateBVN))
		require.NoError(t, edit.Submit())
		require.NoError(t, edit.WaitLoaded())
	})
}
