package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// envSource resolves configuration keys against the process environment first, then
// against the key/value pairs parsed from a .env file. Parse errors for individual
// values are collected rather than aborting at the first one, so a bad file is
// reported in full.
type envSource struct {
	fileVars map[string]string
	errors   []error
}

func newEnvSource(envFile string) (*envSource, error) {
	s := &envSource{fileVars: map[string]string{}}
	if envFile == "" {
		return s, nil
	}
	vars, err := parseEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	s.fileVars = vars
	return s, nil
}

// parseEnvFile reads a file of KEY=VALUE lines. Blank lines and lines starting with
// "#" are skipped, and single or double quotes around values are stripped.
func parseEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read env file: %w", err)
	}
	defer f.Close()

	vars := map[string]string{}
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%s:%d: expected KEY=VALUE, got %q", path, lineNum, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read env file: %w", err)
	}
	return vars, nil
}

func (s *envSource) lookup(key string) (string, bool) {
	if value, ok := os.LookupEnv(key); ok {
		return value, true
	}
	value, ok := s.fileVars[key]
	return value, ok
}

func (s *envSource) str(key string, target *string) {
	if value, ok := s.lookup(key); ok {
		*target = value
	}
}

func (s *envSource) boolean(key string, target *bool) {
	value, ok := s.lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("%s: expected a boolean, got %q", key, value))
		return
	}
	*target = parsed
}

func (s *envSource) integer(key string, target *int) {
	value, ok := s.lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("%s: expected an integer, got %q", key, value))
		return
	}
	*target = parsed
}

func (s *envSource) seconds(key string, target *time.Duration) {
	s.duration(key, target, time.Second)
}

func (s *envSource) millis(key string, target *time.Duration) {
	s.duration(key, target, time.Millisecond)
}

func (s *envSource) duration(key string, target *time.Duration, unit time.Duration) {
	value, ok := s.lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("%s: expected an integer, got %q", key, value))
		return
	}
	*target = time.Duration(parsed) * unit
}

func (s *envSource) err() error {
	if len(s.errors) == 0 {
		return nil
	}
	var msgs []string
	for _, e := range s.errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
