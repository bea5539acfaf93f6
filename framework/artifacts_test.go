package framework

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArtifactStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "artifacts", "nested")
	store, err := NewArtifactStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFilePathIsInsideStoreAndUnique(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	first := store.FilePath("FAILED_login/wrong password", "png")
	second := store.FilePath("FAILED_login/wrong password", "png")

	assert.NotEqual(t, first, second)
	for _, path := range []string{first, second} {
		assert.Equal(t, store.Dir(), filepath.Dir(path))
		assert.True(t, strings.HasSuffix(path, ".png"), "got %s", path)
		assert.NotContains(t, filepath.Base(path), " ")
	}
}

func TestSanitizeNameReplacesUnsafeCharacters(t *testing.T) {
	assert.Equal(t, "login_wrong_password", SanitizeName("login/wrong password"))
	assert.Equal(t, "select_option__GLOBUS_BANK_", SanitizeName(`select option "GLOBUS BANK"`))
	assert.Equal(t, "already-safe.name", SanitizeName("already-safe.name"))
}

func TestSanitizeNameTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a", 500)
	assert.Len(t, SanitizeName(long), 100)
}
