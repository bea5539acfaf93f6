package framework

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

const artifactTimestampFormat = "20060102_150405"

var artifactCounter int64 // distinguishes artifacts created within the same second

// ArtifactStore owns the directory that failure artifacts (screenshots, page dumps)
// are written into, and produces the file paths for them.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates the artifact directory if it does not already exist.
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create artifact directory %s: %w", dir, err)
	}
	return &ArtifactStore{dir: dir}, nil
}

func (s *ArtifactStore) Dir() string {
	return s.dir
}

// FilePath returns a unique path inside the artifact directory for a new artifact,
// combining the sanitized name with a timestamp.
func (s *ArtifactStore) FilePath(name, extension string) string {
	file := fmt.Sprintf("%s_%s_%d.%s",
		SanitizeName(name),
		time.Now().Format(artifactTimestampFormat),
		atomic.AddInt64(&artifactCounter, 1),
		extension,
	)
	return filepath.Join(s.dir, file)
}

// SanitizeName converts an arbitrary test or element description into a string that is
// safe to use as a file name.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	sanitized := b.String()
	const maxNameLength = 100
	if len(sanitized) > maxNameLength {
		sanitized = sanitized[:maxNameLength]
	}
	return sanitized
}
