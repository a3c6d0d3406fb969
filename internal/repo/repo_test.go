package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkConfig(t *testing.T, dir string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, Dir), 0755))
	p := filepath.Join(dir, Dir, ConfigFile)
	require.NoError(t, os.WriteFile(p, []byte("{}\n"), 0644))
	return p
}

func TestDiscover(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	want := mkConfig(t, root)

	deep := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(deep, 0755))

	for _, start := range []string{root, deep} {
		got, err := Discover(start)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, root, Root(deep))
}

func TestDiscover_NotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	_, err := Discover(dir)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, dir, Root(dir))
}

func TestDiscover_StopsAtHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	mkConfig(t, home)

	sub := filepath.Join(home, "work")
	require.NoError(t, os.MkdirAll(sub, 0755))

	_, err := Discover(sub)
	assert.ErrorIs(t, err, ErrNotFound, "the global config is not a project")
}

func TestDiscover_DirectoryNamedConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, Dir, ConfigFile), 0755))

	_, err := Discover(root)
	assert.ErrorIs(t, err, ErrNotFound)
}
