package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates dirs and empty files under root
func makeTree(t *testing.T, root string, dirs, files []string) {
	t.Helper()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	for _, file := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, file), []byte("test"), 0644))
	}
}

func TestWalk_BasicTraversal(t *testing.T) {
	tmpDir := t.TempDir()
	makeTree(t, tmpDir,
		[]string{"dir1", "dir2", "dir1/subdir"},
		[]string{"file1.txt", "dir1/file2.txt", "dir1/subdir/file3.txt"},
	)

	var visited []string
	err := Walk(tmpDir, WalkOptions{}, func(path string, d fs.DirEntry) error {
		rel, _ := filepath.Rel(tmpDir, path)
		if rel != "." {
			visited = append(visited, rel)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, visited, 6)
}

func TestWalk_IgnoreDirs(t *testing.T) {
	tmpDir := t.TempDir()
	makeTree(t, tmpDir, []string{"__pycache__", "widgets"}, []string{"__pycache__/x.ui", "widgets/y.ui"})

	var visited []string
	err := Walk(tmpDir, WalkOptions{IgnoreDirs: []string{"__pycache__"}}, func(path string, d fs.DirEntry) error {
		visited = append(visited, d.Name())
		return nil
	})
	require.NoError(t, err)
	assert.NotContains(t, visited, "__pycache__")
	assert.NotContains(t, visited, "x.ui")
	assert.Contains(t, visited, "y.ui")
}

func TestWalk_SkipHidden(t *testing.T) {
	tmpDir := t.TempDir()
	makeTree(t, tmpDir, []string{".git"}, []string{".git/a.ui", ".hidden.ui", "shown.ui"})

	var visited []string
	err := Walk(tmpDir, WalkOptions{SkipHidden: true}, func(path string, d fs.DirEntry) error {
		visited = append(visited, d.Name())
		return nil
	})
	require.NoError(t, err)
	assert.NotContains(t, visited, "a.ui")
	assert.NotContains(t, visited, ".hidden.ui")
	assert.Contains(t, visited, "shown.ui")
}

func TestWalk_IgnorePatterns(t *testing.T) {
	tmpDir := t.TempDir()
	makeTree(t, tmpDir, nil, []string{"keep.ui", "ignore.tmp", "also_ignore.bak"})

	var visited []string
	err := Walk(tmpDir, WalkOptions{IgnorePatterns: []string{"*.tmp", "*.bak"}}, func(path string, d fs.DirEntry) error {
		if !d.IsDir() {
			visited = append(visited, d.Name())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.ui"}, visited)
}

func TestDirs(t *testing.T) {
	tmpDir := t.TempDir()
	makeTree(t, tmpDir, []string{"ui", "ui/dialogs", "ui/dialogs/nested", "modules"}, []string{"ui/a.ui"})

	dirs, err := Dirs(tmpDir, WalkOptions{})
	require.NoError(t, err)

	want := []string{
		tmpDir,
		filepath.Join(tmpDir, "modules"),
		filepath.Join(tmpDir, "ui"),
		filepath.Join(tmpDir, "ui", "dialogs"),
		filepath.Join(tmpDir, "ui", "dialogs", "nested"),
	}
	assert.Equal(t, want, dirs)
}

func TestDirs_MissingRoot(t *testing.T) {
	_, err := Dirs(filepath.Join(t.TempDir(), "missing"), WalkOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFiles_FlatOnly(t *testing.T) {
	tmpDir := t.TempDir()
	makeTree(t, tmpDir,
		[]string{"nested", "dir.qrc"},
		[]string{"b.qrc", "a.qrc", "notes.txt", "nested/c.qrc"},
	)

	files, err := Files(tmpDir, ".qrc")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.qrc"),
		filepath.Join(tmpDir, "b.qrc"),
	}, files)
}
