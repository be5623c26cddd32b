package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExtensions = []string{".jpg", ".jpeg", ".png", ".heic", ".webp", ".tiff", ".bmp"}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestScan_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "test.jpg"))
	touch(t, filepath.Join(dir, "selfie.png"))
	touch(t, filepath.Join(dir, "meme.webp"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "nested", "deep.jpg"))

	result, err := Scan(dir, false, testExtensions)
	require.NoError(t, err)

	assert.Equal(t, 3, result.PhotoCount)
	assert.Equal(t, []string{
		filepath.Join(dir, "meme.webp"),
		filepath.Join(dir, "selfie.png"),
		filepath.Join(dir, "test.jpg"),
	}, result.Photos)
}

func TestScan_Recursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.jpg"))
	touch(t, filepath.Join(dir, "a", "middle.png"))
	touch(t, filepath.Join(dir, "a", "b", "bottom.webp"))
	touch(t, filepath.Join(dir, "a", "b", "skip.mp4"))

	result, err := Scan(dir, true, testExtensions)
	require.NoError(t, err)

	assert.Equal(t, 3, result.PhotoCount)
	assert.True(t, sort.StringsAreSorted(result.Photos))
	assert.Contains(t, result.Photos, filepath.Join(dir, "a", "b", "bottom.webp"))
	assert.NotContains(t, result.Photos, filepath.Join(dir, "a", "b", "skip.mp4"))
}

func TestScan_CaseInsensitiveExtensionsNoDuplicates(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "test.JPG"))

	// overlapping patterns must not double-count the same file
	result, err := Scan(dir, false, []string{".jpg", ".JPG"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.PhotoCount)
	assert.Equal(t, []string{filepath.Join(dir, "test.JPG")}, result.Photos)
}

func TestScan_ExcludesNonMatchingAtEveryDepth(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "doc.pdf"))
	touch(t, filepath.Join(dir, "sub", "movie.mov"))
	touch(t, filepath.Join(dir, "sub", "deeper", "archive.zip"))

	result, err := Scan(dir, true, testExtensions)
	require.NoError(t, err)
	assert.Equal(t, 0, result.PhotoCount)
	assert.Empty(t, result.Photos)
}

func TestScan_MissingDirectory(t *testing.T) {
	result, err := Scan(filepath.Join(t.TempDir(), "nope"), true, testExtensions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	assert.Empty(t, result.Photos)
}

func TestScan_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.jpg")
	touch(t, file)

	result, err := Scan(file, false, testExtensions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
	assert.Empty(t, result.Photos)
}
