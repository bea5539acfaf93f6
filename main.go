package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/candileasing/selfservice-ui-tests/browser"
	"github.com/candileasing/selfservice-ui-tests/config"
	"github.com/candileasing/selfservice-ui-tests/framework"
	"github.com/candileasing/selfservice-ui-tests/uitests"
)

const appReachabilityTimeout = time.Second * 30

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	envFile := params.envFile
	if envFile == ".env" {
		// The default .env is optional; an explicitly named file is not.
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = ""
		}
	}
	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		os.Exit(1)
	}
	params.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		os.Exit(1)
	}

	artifacts, err := framework.NewArtifactStore(cfg.ArtifactsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Artifact directory error: %s\n", err)
		os.Exit(1)
	}

	if err := waitForApp(cfg.BaseURL, appReachabilityTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Target application error: %s\n", err)
		os.Exit(1)
	}

	engine := browser.NewEngine(cfg)
	fmt.Printf("Starting %s\n", cfg.Browser)
	if err := engine.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Browser error: %s\n", err)
		os.Exit(1)
	}
	defer engine.Stop()

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters, params.tags)

	fmt.Println("Running test suite")

	testLogger := ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := uitests.RunTestSuite(engine, cfg, artifacts, params.asFilter(), &testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun just the failed tests:")
		fmt.Printf("  %s\n", params.rerunCommand(results.Failures))
		os.Exit(1)
	}
}

// waitForApp polls the application's base URL until it responds, so a slow cold
// start (or a typo in the URL) is reported up front rather than as a cascade of
// test failures.
func waitForApp(url string, timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Checking that %s is reachable", url)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := http.DefaultClient.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			fmt.Fprintln(output)
			if resp.StatusCode >= 400 {
				return fmt.Errorf("application returned status code %d", resp.StatusCode)
			}
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 500)
	}
}
