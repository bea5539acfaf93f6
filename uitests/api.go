// Package uitests contains the portal UI tests themselves and their supporting API.
//
// Test harness infrastructure that is not specific to the portal, such as the test
// context, filtering, and artifact handling, is in the lower-level framework package;
// browser plumbing is in the browser package.
package uitests

import (
	"github.com/stretchr/testify/require"

	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/config"
	"github.com/candileasing/selfservice-ui-tests/framework"
	"github.com/candileasing/selfservice-ui-tests/pages"
)

// Tags used by the suites. Filters select on these with -tags / -skip-tags.
const (
	TagSmoke      = "smoke"
	TagCritical   = "critical"
	TagRegression = "regression"
	TagLogin      = "login"
	TagHome       = "home"
	TagProfile    = "profile"
	TagBank       = "bank"
	TagContacts   = "contacts"
	TagBVN        = "bvn"
	TagIdentity   = "identity"
	// TagMutating marks tests that create or modify records in the target
	// application. They only run when mutations are allowed.
	TagMutating = "mutating"
)

type environment struct {
	engine    *browser.Engine
	config    *config.Config
	artifacts *framework.ArtifactStore
}

// T represents a test or subtest in the UI test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment
// that is outside of the Go test runner, with extra features such as debug logging
// and failure screenshots. Those features are provided by the lower-level framework
// package.
//
// Every T lazily opens its own browser session the first time a page object is
// requested, and closes it when the test scope ends. If the test failed, a screenshot
// of the final page state is captured first and attached to the result.
//
// To make test assertions, use the assert and require packages, passing the *T as if
// it were a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
	session *browser.Session
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{context: context, env: env}
}

func (t *T) close() {
	if t.session == nil {
		return
	}
	if t.context.Failed() && t.env.config.ScreenshotOnFailure {
		path := t.env.artifacts.FilePath("FAILED_"+t.context.ID().String(), "png")
		if err := t.session.Screenshot(path); err != nil {
			t.context.Debug("could not capture failure screenshot: %s", err)
		} else {
			t.context.AddArtifact(path)
		}
	}
	t.session.Close()
	t.session = nil
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The
// methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs an untagged subtest. The specified function receives a new T instance
// with its own browser session.
func (t *T) Run(name string, action func(*T)) {
	t.RunTagged(name, nil, action)
}

// RunTagged runs a subtest that carries the given tags in addition to those of the
// enclosing scope.
func (t *T) RunTagged(name string, tags []string, action func(*T)) {
	t.context.RunTagged(name, tags, func(c *framework.Context) {
		t1 := newTestScope(c, t.env)
		c.OnClose(t1.close)
		action(t1)
	})
}

// Debug logs some debug output for the test. The output will be passed to the test
// logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) Config() *config.Config {
	return t.env.config
}

// RequireCredentials skips this test if no account credentials are configured.
func (t *T) RequireCredentials() {
	if !t.env.config.HasCredentials() {
		t.context.SkipWithReason("no test account credentials are configured")
	}
}

// RequireMutations skips this test unless data-mutating tests are allowed for this
// run.
func (t *T) RequireMutations() {
	if !t.env.config.AllowMutations {
		t.context.SkipWithReason("data-mutating tests are disabled (enable with -mutate)")
	}
}

// Session returns the test's browser session, opening it on first use.
func (t *T) Session() *browser.Session {
	if t.session == nil {
		session, err := t.env.engine.NewSession(t.context.ID().String(), t.context.DebugLogger())
		require.NoError(t, err, "could not open a browser session")
		t.session = session
	}
	return t.session
}

func (t *T) base() pages.BasePage {
	return pages.New(t.Session(), t.env.config, t.env.artifacts, t.context.DebugLogger(), t.context)
}

func (t *T) HomePage() *pages.HomePage {
	return pages.NewHomePage(t.base())
}

func (t *T) LoginPage() *pages.LoginPage {
	return pages.NewLoginPage(t.base())
}

func (t *T) SelfServicePage() *pages.SelfServicePage {
	return pages.NewSelfServicePage(t.base())
}

func (t *T) EditPersonalDataPage() *pages.EditPersonalDataPage {
	return pages.NewEditPersonalDataPage(t.base())
}

func (t *T) AddBankDetailPage() *pages.AddBankDetailPage {
	return pages.NewAddBankDetailPage(t.base())
}

func (t *T) EditBankDetailPage() *pages.EditBankDetailPage {
	return pages.NewEditBankDetailPage(t.base())
}

func (t *T) AddEmergencyContactPage() *pages.AddEmergencyContactPage {
	return pages.NewAddEmergencyContactPage(t.base())
}

func (t *T) EditEmergencyContactPage() *pages.EditEmergencyContactPage {
	return pages.NewEditEmergencyContactPage(t.base())
}

func (t *T) AddBVNPage() *pages.AddBVNPage {
	return pages.NewAddBVNPage(t.base())
}

func (t *T) EditBVNPage() *pages.EditBVNPage {
	return pages.NewEditBVNPage(t.base())
}

func (t *T) AddIdentityPage() *pages.AddIdentityPage {
	return pages.NewAddIdentityPage(t.base())
}

// LoginToPortal performs the full standard sign-in: open the login page, submit the
// configured credentials, pick the default company, and wait for the self-service
// dashboard. It fails the test immediately if any step does not complete.
func (t *T) LoginToPortal() *pages.SelfServicePage {
	t.RequireCredentials()
	login := t.LoginPage()
	require.NoError(t, login.Open())
	require.NoError(t, login.Login(t.env.config.Username, t.env.config.Password))
	require.NoError(t, login.AwaitCompanyList())
	require.NoError(t, login.SelectCompany(pages.DefaultCompanyName))

	dashboard := t.SelfServicePage()
	require.NoError(t, dashboard.VerifyLoaded())
	return dashboard
}
