package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/candileasing/selfservice-ui-tests/framework"
)

var (
	failedColor  = color.New(color.FgRed, color.Bold)
	skippedColor = color.New(color.FgYellow)
)

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, artifacts []string, debugOutput framework.CapturedOutput) {
	if failed {
		_, _ = failedColor.Printf("  FAILED: %s\n", id)
		for _, artifact := range artifacts {
			fmt.Printf("    artifact: %s\n", artifact)
		}
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		_, _ = skippedColor.Printf("  SKIPPED: %s\n", id)
	} else {
		_, _ = skippedColor.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}
