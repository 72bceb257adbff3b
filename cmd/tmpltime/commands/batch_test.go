package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

func writeTemplates(t *testing.T, dir string, files map[string]string) []string {
	t.Helper()
	paths := make([]string, 0, len(files))
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		paths = append(paths, path)
	}
	return paths
}

func TestBatchCmd(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	files := map[string]string{}
	want := map[string]string{}
	for i := range 12 {
		name := fmt.Sprintf("page%02d.md.tmpl", i)
		files[name] = fmt.Sprintf(`{{ datetime "from_timestamp" .base "add_days" %d "output_format" "%%F" }}`, i)
		want[fmt.Sprintf("page%02d.md", i)] = fmt.Sprintf("1989-08-%02d", 9+i)
	}
	files["notes.txt"] = "{{ .Date }}"
	want["notes.txt"] = "2026-10-19"

	dataPath := filepath.Join(src, "data.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte("base: 618658211\n"), 0o600))

	env := newTestEnv(t)
	args := append([]string{"batch", "--data", dataPath, "--out-dir", out, "-j", "3"}, writeTemplates(t, src, files)...)
	require.NoError(t, env.run(t, args...))

	for name, content := range want {
		// #nosec G304 -- path is controlled by test.
		got, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.Equal(t, content, string(got), name)
	}
}

func TestBatchCmd_FailureKeepsClassification(t *testing.T) {
	src := t.TempDir()
	paths := writeTemplates(t, src, map[string]string{
		"bad.tmpl": `{{ datetime "with_hour" "24" }}`,
	})

	env := newTestEnv(t)
	err := env.run(t, append([]string{"batch", "--out-dir", t.TempDir()}, paths...)...)
	require.Error(t, err)

	c, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryFieldOutOfRange, c.Category())
	assert.Equal(t, "with_hour", c.Parameter())
	assert.Contains(t, c.Message(), "failed to render bad.tmpl")
}

func TestBatchCmd_DuplicateOutputs(t *testing.T) {
	a := filepath.Join(t.TempDir(), "index.tmpl")
	b := filepath.Join(t.TempDir(), "index.tmpl")
	for _, p := range []string{a, b} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	}

	env := newTestEnv(t)
	err := env.run(t, "batch", "--out-dir", t.TempDir(), a, b)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "page.md", outputName("/x/page.md.tmpl", ".tmpl"))
	assert.Equal(t, ".tmpl", outputName("/x/.tmpl", ".tmpl"))
	assert.Equal(t, "page.tmpl", outputName("page.tmpl", ""))
	assert.Equal(t, "page.txt", outputName("page.txt", ".tmpl"))
}
