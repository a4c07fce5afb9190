package pathinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	root, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "plan.md"), []byte("# plan"), 0644))
	return root
}

func TestNew_Directory(t *testing.T) {
	root := setup(t)

	info, err := New(afero.NewOsFs(), filepath.Join(root, "docs"))
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.False(t, info.HasPattern())
	assert.Equal(t, filepath.Join(root, "docs"), info.Canonical)
}

func TestNew_ExistingFile(t *testing.T) {
	root := setup(t)

	info, err := New(afero.NewOsFs(), filepath.Join(root, "docs", "plan.md"))
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.Equal(t, "plan.md", info.Pattern)
	assert.Equal(t, filepath.Join(root, "docs"), info.Canonical)
}

func TestNew_PatternSegment(t *testing.T) {
	root := setup(t)

	info, err := New(afero.NewOsFs(), filepath.Join(root, "docs", "*.md"))
	require.NoError(t, err)
	assert.False(t, info.Exists)
	assert.Equal(t, "*.md", info.Pattern)
	assert.Equal(t, filepath.Join(root, "docs"), info.Canonical)
}

func TestNew_NotFound(t *testing.T) {
	root := setup(t)

	_, err := New(afero.NewOsFs(), filepath.Join(root, "missing", "deeper"))
	require.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestNew_MemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/srv/logs", 0755))

	info, err := New(fs, "/srv/logs")
	require.NoError(t, err)
	assert.True(t, info.Exists)

	info, err = New(fs, "/srv/logs/app-*")
	require.NoError(t, err)
	assert.Equal(t, "app-*", info.Pattern)
}
