//go:build e2e

// Browser-gated tests for the engine and session lifecycle, run with
//
//	go test -tags e2e ./browser/...
package browser_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/config"
	"github.com/candileasing/selfservice-ui-tests/fixtures"
)

func TestEngineAndSessionLifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.Headless = true
	cfg.ElementTimeout = time.Second * 10

	engine := browser.NewEngine(&cfg)
	require.NoError(t, engine.Start())
	defer engine.Stop()

	server := fixtures.NewServer()
	defer server.Close()
	fixture := server.RegisterHTML("home", fixtures.LoginFormHTML)

	session, err := engine.NewSession(t.Name(), nil)
	require.NoError(t, err)
	defer session.Close()

	require.NoError(t, session.Goto(fixture.URL()))
	assert.Contains(t, session.URL(), "/pages/home")

	title, err := session.Title()
	require.NoError(t, err)
	assert.Equal(t, "CAndILeasing", title)

	require.NoError(t, session.WaitVisible(`input[name="email"]`, time.Second*5))
	require.NoError(t, session.Fill(`input[name="email"]`, "qa@example.com"))
	value, err := session.Attribute(`input[name="email"]`, "name")
	require.NoError(t, err)
	assert.Equal(t, "email", value)

	n, err := session.Count("input")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	shot := filepath.Join(t.TempDir(), "page.png")
	require.NoError(t, session.Screenshot(shot))
	info, err := os.Stat(shot)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Two sessions from one engine are isolated contexts.
	second, err := engine.NewSession(t.Name()+"-2", nil)
	require.NoError(t, err)
	defer second.Close()
	assert.NotContains(t, second.URL(), "/pages/home")
}

func TestSessionWithoutStartedEngineFails(t *testing.T) {
	cfg := config.Default()
	engine := browser.NewEngine(&cfg)
	_, err := engine.NewSession("early", nil)
	require.Error(t, err)
}
