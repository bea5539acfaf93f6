package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// CombineFilters returns a filter that runs a test only if every given filter allows it.
func CombineFilters(filters ...Filter) Filter {
	return func(id TestID) bool {
		for _, f := range filters {
			if f != nil && !f(id) {
				return false
			}
		}
		return true
	}
}

// RegexFilters selects tests by matching their path against regex patterns, in the
// same way as "go test -run".
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// TagFilters selects tests by the tags they carry, like pytest's "-m" option. A test
// runs only if it has every required tag and none of the excluded ones.
type TagFilters struct {
	Require TagList
	Exclude TagList
}

func (t TagFilters) AsFilter(id TestID) bool {
	for _, tag := range t.Require.tags {
		if !id.HasTag(tag) {
			return false
		}
	}
	for _, tag := range t.Exclude.tags {
		if id.HasTag(tag) {
			return false
		}
	}
	return true
}

// TagList is a comma-separated list of tag names, usable as a flag.Value.
type TagList struct {
	tags []string
}

func (t TagList) String() string {
	return strings.Join(t.tags, ", ")
}

// Set is called by the command line parser
func (t *TagList) Set(value string) error {
	for _, tag := range strings.Split(value, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		t.tags = append(t.tags, tag)
	}
	return nil
}

func (t TagList) IsDefined() bool {
	return len(t.tags) != 0
}

// PrintFilterDescription explains on the console which tests will be skipped due to
// the filter criteria for this run.
func PrintFilterDescription(dest io.Writer, filters RegexFilters, tags TagFilters) {
	if !filters.MustMatch.IsDefined() && !filters.MustNotMatch.IsDefined() &&
		!tags.Require.IsDefined() && !tags.Exclude.IsDefined() {
		return
	}
	fmt.Fprintln(dest, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(dest, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(dest, "  skip any matching %s\n", filters.MustNotMatch)
	}
	if tags.Require.IsDefined() {
		fmt.Fprintf(dest, "  skip any not tagged with all of: %s\n", tags.Require)
	}
	if tags.Exclude.IsDefined() {
		fmt.Fprintf(dest, "  skip any tagged with any of: %s\n", tags.Exclude)
	}
	fmt.Fprintln(dest)
}
