package uitests

import (
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/candileasing/selfservice-ui-tests/testdata"
)

func DoPersonalDataTests(t *T) {
	t.RunTagged("edit other name and job title", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.ClickEditPersonalData())

		edit := t.EditPersonalDataPage()
		require.NoError(t, edit.FillForm(testdata.PersonalData{
			OtherName: ldvalue.NewOptionalString(t.Config().Data.OtherName),
			JobTitle:  ldvalue.NewOptionalString(t.Config().Data.JobTitle),
		}))
		require.NoError(t, edit.Submit())
		require.NoError(t, edit.WaitLoaded())
	})

	t.RunTagged("edit form updates only given fields", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.ClickEditPersonalData())

		// Leaving JobTitle undefined must leave the existing value alone.
		edit := t.EditPersonalDataPage()
		require.NoError(t, edit.FillForm(testdata.PersonalData{
			OtherName: ldvalue.NewOptionalString(t.Config().Data.OtherName),
		}))
		require.NoError(t, edit.Submit())
		require.NoError(t, edit.WaitLoaded())
	})
}
