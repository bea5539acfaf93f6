package uitests

import (
	"github.com/stretchr/testify/require"

	"github.com/candileasing/selfservice-ui-tests/testdata"
)

func DoBankDetailTests(t *T) {
	t.RunTagged("add bank detail", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.OpenBankDetailsTab())
		require.NoError(t, dashboard.ClickAddBankDetail())

		add := t.AddBankDetailPage()
		require.NoError(t, add.FillForm(testdata.BankDetail{
			BankName: t.Config().Data.BankName,
			BankID:   t.Config().Data.BankID,
			SortCode: t.Config().Data.SortCode,
		}))
		require.NoError(t, add.Submit())
		require.NoError(t, add.WaitLoaded())
	})

	t.RunTagged("edit bank detail", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.OpenBankDetailsTab())
		require.NoError(t, dashboard.ClickEditBankDetail())

		edit := t.EditBankDetailPage()
		require.NoError(t, edit.EnterSortCode(t.Config().Data.SortCode))
		require.NoError(t, edit.Submit())
		require.NoError(t, edit.WaitLoaded())
	})
}
