package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID    TestID
	Errors    []error
	Artifacts []string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID identifies a test by the path of names leading to it in the test tree, plus
// any tags that the test or its enclosing scopes declared.
type TestID struct {
	Path []string
	Tags []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

func (t TestID) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

var (
	passResultColor = color.New(color.FgGreen, color.Bold)
	failResultColor = color.New(color.FgRed, color.Bold)
)

// PrintResults writes a summary of the test run to the given writer.
func PrintResults(dest io.Writer, results Results) {
	if results.OK() {
		_, _ = passResultColor.Fprintf(dest, "All tests passed (%d)\n", len(results.Tests))
		return
	}
	_, _ = failResultColor.Fprintf(dest, "FAILED: %d tests out of %d\n", len(results.Failures), len(results.Tests))
	for _, failure := range results.Failures {
		fmt.Fprintf(dest, "  %s\n", failure.TestID)
		for _, err := range failure.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(dest, "    %s\n", line)
			}
		}
		for _, artifact := range failure.Artifacts {
			fmt.Fprintf(dest, "    artifact: %s\n", artifact)
		}
	}
}
