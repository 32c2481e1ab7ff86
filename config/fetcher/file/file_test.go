package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestOpen_Success(t *testing.T) {
	t.Parallel()

	content := []byte("'postgres://db:5432/app'\n")
	entryPath := writeFile(t, t.TempDir(), "database_url", content)

	fetcher, err := Open(entryPath)
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, entryPath, fetcher.Path())
}

func TestOpen_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := Open("/nonexistent/catalog/entry")

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
}

func TestOpen_EmptyFile(t *testing.T) {
	t.Parallel()

	fetcher, err := Open(writeFile(t, t.TempDir(), "empty", []byte{}))
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOpen_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := Open(t.TempDir())

	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestOpen_CleansPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "timeout", []byte("30"))

	fetcher, err := Open(dir + "/./sub/../timeout")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "timeout"), fetcher.Path())
}

func TestNewFetcher_ReturnsValidConstructor(t *testing.T) {
	t.Parallel()

	modulePath := writeFile(t, t.TempDir(), "settings.yaml", []byte("debug: true"))

	constructor := NewFetcher(modulePath)
	assert.NotNil(t, constructor)

	fetcher, err := constructor()
	require.NoError(t, err)
	assert.Equal(t, modulePath, fetcher.filepath)
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	originalContent := []byte(`'v1'`)
	modifiedContent := []byte(`'v2'`)

	entryPath := writeFile(t, t.TempDir(), "release", originalContent)

	fetcher, err := Open(entryPath)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(entryPath, modifiedContent, 0o600))

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, originalContent, data, "Fetch should return cached data, not current file content")
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	content := []byte(`True`)

	fetcher, err := Open(writeFile(t, t.TempDir(), "enabled", content))
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	data1[0] = 'X'

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, data2, "Fetch should return unmodified cached data")
}

func TestReadDir_ListsEntriesSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "zeta", []byte("1"))
	writeFile(t, dir, "alpha", []byte("2"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

	entries, err := ReadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Name: "alpha", Path: filepath.Join(dir, "alpha"), IsDir: false},
		{Name: "nested", Path: filepath.Join(dir, "nested"), IsDir: true},
		{Name: "zeta", Path: filepath.Join(dir, "zeta"), IsDir: false},
	}, entries)
}

func TestReadDir_SymlinkToDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Symlink(t.TempDir(), filepath.Join(dir, "link")))

	entries, err := ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir)
}

func TestReadDir_Empty(t *testing.T) {
	t.Parallel()

	entries, err := ReadDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadDir_Missing(t *testing.T) {
	t.Parallel()

	entries, err := ReadDir("/nonexistent/catalog")

	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, entries)
}

func TestReadDir_RegularFile(t *testing.T) {
	t.Parallel()

	entries, err := ReadDir(writeFile(t, t.TempDir(), "plain", []byte("1")))

	require.ErrorIs(t, err, ErrNotDirectory)
	assert.Nil(t, entries)
}
