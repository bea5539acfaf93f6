package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	"github.com/candileasing/selfservice-ui-tests/config"
	"github.com/candileasing/selfservice-ui-tests/framework"
)

type commandParams struct {
	baseURL      string
	envFile      string
	browser      string
	headless     bool
	slowMoMS     int
	filters      framework.RegexFilters
	tags         framework.TagFilters
	mutate       bool
	artifactsDir string
	debug        bool
	debugAll     bool

	explicit map[string]bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "base-url", "", "base URL of the target application (default from config)")
	fs.StringVar(&c.envFile, "env", ".env", "path to the .env configuration file (\"\" to skip)")
	fs.StringVar(&c.browser, "browser", "", "browser engine: chromium, firefox, or webkit")
	fs.BoolVar(&c.headless, "headless", true, "run the browser headless")
	fs.IntVar(&c.slowMoMS, "slow-mo", 0, "slow down browser operations by this many milliseconds")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.Var(&c.tags.Require, "tags", "comma-separated tag(s) a test must have to run")
	fs.Var(&c.tags.Exclude, "skip-tags", "comma-separated tag(s) that exclude a test")
	fs.BoolVar(&c.mutate, "mutate", false, "allow tests that create or modify records in the target application")
	fs.StringVar(&c.artifactsDir, "artifacts", "", "directory for screenshots and other artifacts (default from config)")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	c.explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		c.explicit[f.Name] = true
	})
	return true
}

// applyTo overrides configuration values with any that were given explicitly on the
// command line. Flag values beat both .env and environment variables.
func (c *commandParams) applyTo(cfg *config.Config) {
	if c.explicit["base-url"] {
		cfg.SetBaseURL(c.baseURL)
	}
	if c.explicit["browser"] {
		cfg.Browser = c.browser
	}
	if c.explicit["headless"] {
		cfg.Headless = c.headless
	}
	if c.explicit["slow-mo"] {
		cfg.SlowMo = time.Duration(c.slowMoMS) * time.Millisecond
	}
	if c.explicit["artifacts"] {
		cfg.ArtifactsDir = c.artifactsDir
	}
	if c.mutate {
		cfg.AllowMutations = true
	}
}

func (c *commandParams) asFilter() framework.Filter {
	return framework.CombineFilters(c.filters.AsFilter, c.tags.AsFilter)
}

// rerunCommand builds a copy-pastable command line that reruns exactly the failed
// tests, preserving the non-filter flags from this invocation.
func (c *commandParams) rerunCommand(failures []framework.TestResult) string {
	var b commandBuilder
	b.add(os.Args[0])
	for _, name := range []string{"base-url", "env", "browser", "slow-mo", "artifacts"} {
		if c.explicit[name] {
			switch name {
			case "base-url":
				b.add("-base-url", c.baseURL)
			case "env":
				b.add("-env", c.envFile)
			case "browser":
				b.add("-browser", c.browser)
			case "slow-mo":
				b.add("-slow-mo", fmt.Sprintf("%d", c.slowMoMS))
			case "artifacts":
				b.add("-artifacts", c.artifactsDir)
			}
		}
	}
	if c.mutate {
		b.add("-mutate")
	}
	for _, failure := range failures {
		b.add("-run", "^"+regexp.QuoteMeta(failure.TestID.String())+"$")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
