package uitests

import (
	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/config"
	"github.com/candileasing/selfservice-ui-tests/framework"
)

// RunTestSuite runs every registered test group against the target application,
// subject to the filter.
func RunTestSuite(
	engine *browser.Engine,
	cfg *config.Config,
	artifacts *framework.ArtifactStore,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, &environment{
			engine:    engine,
			config:    cfg,
			artifacts: artifacts,
		})

		t.RunTagged("home", []string{TagHome}, DoHomeTests)
		t.RunTagged("login", []string{TagLogin}, DoLoginTests)
		t.RunTagged("personal data", []string{TagProfile}, DoPersonalDataTests)
		t.RunTagged("bank details", []string{TagBank}, DoBankDetailTests)
		t.RunTagged("emergency contacts", []string{TagContacts}, DoEmergencyContactTests)
		t.RunTagged("BVN", []string{TagBVN}, DoBVNTests)
		t.RunTagged("identity", []string{TagIdentity}, DoIdentityTests)
	})
}
