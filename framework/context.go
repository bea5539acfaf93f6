package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents a single test or subtest scope. It provides roughly the same
// functionality as Go's testing.T, but in an environment that is outside of the Go
// test runner, plus debug-output capture and artifact tracking.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	artifacts   []string
	cleanups    []func()
}

// Run executes a tree of tests, using the filter to decide which ones to run and the
// test logger to report progress. The action receives a root Context on which it can
// call Run to create subtests.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if !c.skipped {
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		for i := len(c.cleanups) - 1; i >= 0; i-- {
			c.cleanups[i]()
		}
		if c.skipped {
			return
		}
		// The root scope is bookkeeping, not a test; only record it if something
		// failed outside of any subtest.
		if len(c.id.Path) == 0 && !c.failed {
			return
		}
		result := TestResult{TestID: c.id, Errors: c.errors, Artifacts: c.artifacts}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest with no tags of its own (it still inherits the enclosing scope's
// tags). This is equivalent to the Run method of testing.T.
func (c *Context) Run(name string, action func(*Context)) {
	c.RunTagged(name, nil, action)
}

// RunTagged runs a subtest whose TestID carries the specified tags in addition to any
// tags inherited from the enclosing scope. Tags do not affect the test logic; they only
// exist so that filters can select tests by category.
func (c *Context) RunTagged(name string, tags []string, action func(*Context)) {
	id := TestID{
		Path: append(append([]string(nil), c.id.Path...), name),
		Tags: mergeTags(c.id.Tags, tags),
	}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.artifacts, c1.debugLogger.Output())
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow marks the test as failed and immediately exits it. The methods in the
// require package call FailNow.
func (c *Context) FailNow() {
	c.failed = true
	panic(c)
}

// Failed reports whether the test has failed so far. Cleanup functions use this to
// decide whether to capture failure artifacts.
func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug logs some debug output for the test. The output will be passed to the test
// logger at the end of the test.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// AddArtifact records the path of a file (such as a screenshot) that was produced on
// behalf of this test, so that it can be reported with the test result.
func (c *Context) AddArtifact(path string) {
	c.artifacts = append(c.artifacts, path)
}

// OnClose registers a function to be called when this test scope ends, after the test
// outcome is known but before the result is recorded. Cleanup functions run in
// last-in-first-out order.
func (c *Context) OnClose(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

func mergeTags(inherited, added []string) []string {
	if len(added) == 0 {
		return inherited
	}
	merged := append([]string(nil), inherited...)
	for _, tag := range added {
		found := false
		for _, existing := range merged {
			if existing == tag {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, tag)
		}
	}
	return merged
}
