package uitests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/candileasing/selfservice-ui-tests/pages"
	"github.com/candileasing/selfservice-ui-tests/testdata"
)

func DoEmergencyContactTests(t *T) {
	t.RunTagged("add contact", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.OpenEmergencyContactsTab())
		require.NoError(t, dashboard.ClickAddEmergencyContact())

		contact := testdata.NewEmergencyContact()
		contact.Surname = testdata.UniqueName(contact.Surname)
		t.Debug("adding emergency contact %s %s", contact.FirstName, contact.Surname)

		add := t.AddEmergencyContactPage()
		require.NoError(t, add.FillForm(contact))
		require.NoError(t, add.Submit())
		require.NoError(t, add.WaitLoaded())
	})

	t.RunTagged("blank surname is rejected", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.OpenEmergencyContactsTab())
		require.NoError(t, dashboard.ClickAddEmergencyContact())

		add := t.AddEmergencyContactPage()
		require.NoError(t, add.EnterFirstName(testdata.NewEmergencyContact().FirstName))
		require.NoError(t, add.Submit())

		assert.True(t, add.HasValidationError(pages.ErrBlankSurname),
			"blank-surname validation message should appear")
	})

	t.RunTagged("edit contact", []string{TagRegression, TagMutating}, func(t *T) {
		t.RequireMutations()
		dashboard := t.LoginToPortal()
		require.NoError(t, dashboard.OpenEmergencyContactsTab())
		require.NoError(t, dashboard.ClickEditEmergencyContact())

		edit := t.EditEmergencyContactPage()
		require.NoError(t, edit.FillForm(testdata.EmergencyContact{
			FirstName:    testdata.NewEmergencyContact().FirstName,
			Surname:      testdata.UniqueName("EDITED"),
			MobileNumber: ldvalue.NewOptionalString(testdata.NigerianMobileNumber()),
		}))
		require.NoError(t, edit.Submit())
		require.NoError(t, edit.WaitLoaded())
	})
}
