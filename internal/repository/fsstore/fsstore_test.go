package fsstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, base string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{base}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("icon_001.png"))
	assert.True(t, IsImageFile("photo.JPG"))
	assert.True(t, IsImageFile("anim.Gif"))
	assert.True(t, IsImageFile("pic.webp"))
	assert.False(t, IsImageFile("notes.txt"))
	assert.False(t, IsImageFile("archive.zip"))
	assert.False(t, IsImageFile("noext"))
}

func TestFirstNumber(t *testing.T) {
	assert.Equal(t, 3, firstNumber("icon_003.png"))
	assert.Equal(t, 12, firstNumber("img12_v2.png"))
	assert.Equal(t, 0, firstNumber("cover.png"))
	assert.Equal(t, 10, firstNumber("10.gif"))
}

func TestCategoryList(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "cats", "icon_001.png")
	writeFile(t, base, "cats", "icon_002.gif")
	writeFile(t, base, "cats", "notes.txt")
	writeFile(t, base, "dogs", "icon_001.jpg")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "empty"), 0o755))
	writeFile(t, base, "stray.png") // file at root, not a category

	repo := NewCategoryRepository(base, NewCategoryLocks())
	categories, err := repo.List()
	require.NoError(t, err)

	// empty directory omitted, results alphabetical, txt not counted
	require.Len(t, categories, 2)
	assert.Equal(t, "cats", categories[0].Name)
	assert.Equal(t, 2, categories[0].Count)
	assert.Equal(t, "dogs", categories[1].Name)
	assert.Equal(t, 1, categories[1].Count)
}

func TestCategoryListMissingBase(t *testing.T) {
	repo := NewCategoryRepository(filepath.Join(t.TempDir(), "nope"), NewCategoryLocks())
	categories, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryDelete(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "cats", "icon_001.png")

	repo := NewCategoryRepository(base, NewCategoryLocks())
	require.NoError(t, repo.Delete("cats"))
	assert.NoDirExists(t, filepath.Join(base, "cats"))

	assert.ErrorIs(t, repo.Delete("cats"), os.ErrNotExist)
	assert.ErrorIs(t, repo.Delete("../escape"), os.ErrNotExist)
	assert.ErrorIs(t, repo.Delete(""), os.ErrNotExist)
}

func TestEmoticonListOrder(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{"icon_010.png", "icon_002.png", "cover.png", "icon_001.gif"} {
		writeFile(t, base, "cats", name)
	}

	repo := NewEmoticonRepository(base, NewCategoryLocks())
	names, err := repo.List("cats")
	require.NoError(t, err)

	// numeric order of the first digit run; no digits sorts as 0
	assert.Equal(t, []string{"cover.png", "icon_001.gif", "icon_002.png", "icon_010.png"}, names)
}

func TestEmoticonListMissingCategory(t *testing.T) {
	repo := NewEmoticonRepository(t.TempDir(), NewCategoryLocks())
	_, err := repo.List("ghosts")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEmoticonSaveNumbering(t *testing.T) {
	base := t.TempDir()
	repo := NewEmoticonRepository(base, NewCategoryLocks())

	name, err := repo.Save("cats", ".png", []byte("a"))
	require.NoError(t, err)
	assert.Equal(t, "icon_001.png", name)

	name, err = repo.Save("cats", ".gif", []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, "icon_002.gif", name)

	// non-image files do not advance the sequence
	writeFile(t, base, "cats", "notes.txt")
	name, err = repo.Save("cats", ".jpg", []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, "icon_003.jpg", name)
}

func TestEmoticonDeleteCascade(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "cats", "icon_001.png")
	writeFile(t, base, "cats", "icon_002.png")

	repo := NewEmoticonRepository(base, NewCategoryLocks())

	require.NoError(t, repo.Delete("cats", "icon_001.png"))
	assert.DirExists(t, filepath.Join(base, "cats"))

	// last image removes the category directory too
	require.NoError(t, repo.Delete("cats", "icon_002.png"))
	assert.NoDirExists(t, filepath.Join(base, "cats"))
}

func TestEmoticonDeleteNotFound(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "cats", "icon_001.png")

	repo := NewEmoticonRepository(base, NewCategoryLocks())
	assert.ErrorIs(t, repo.Delete("cats", "icon_999.png"), os.ErrNotExist)
	assert.ErrorIs(t, repo.Delete("ghosts", "icon_001.png"), os.ErrNotExist)
	assert.ErrorIs(t, repo.Delete("cats", "../icon_001.png"), os.ErrNotExist)
}
