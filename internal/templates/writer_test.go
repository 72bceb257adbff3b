package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

func TestWriteRenderedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "page.md")

	require.NoError(t, WriteRenderedFile(path, "content", false))

	// #nosec G304 -- path is controlled by test.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
}

func TestWriteRenderedFile_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o600))

	err := WriteRenderedFile(path, "new", false)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))

	require.NoError(t, WriteRenderedFile(path, "new", true))
	// #nosec G304 -- path is controlled by test.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestWriteRenderedFile_EmptyPath(t *testing.T) {
	err := WriteRenderedFile("", "content", false)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}
