package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EmoticonBackend/internal/repository/fsstore"
)

func newGallery(t *testing.T) (CategoryService, EmoticonService, string) {
	t.Helper()
	base := t.TempDir()
	locks := fsstore.NewCategoryLocks()
	auth := NewAuthService(testPassword)
	return NewCategoryService(fsstore.NewCategoryRepository(base, locks), auth),
		NewEmoticonService(fsstore.NewEmoticonRepository(base, locks), auth),
		base
}

func seed(t *testing.T, base, category string, names ...string) {
	t.Helper()
	dir := filepath.Join(base, category)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func TestCategoryServiceList(t *testing.T) {
	categories, _, base := newGallery(t)
	seed(t, base, "cats", "icon_001.png", "icon_002.png")
	seed(t, base, "dogs", "icon_001.gif")
	seed(t, base, "empty")

	list, err := categories.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "cats", list[0].Name)
	assert.Equal(t, 2, list[0].Count)
}

func TestCategoryServiceDelete(t *testing.T) {
	categories, emoticons, base := newGallery(t)
	seed(t, base, "cats", "icon_001.png")

	assert.ErrorIs(t, categories.Delete("cats", "wrong"), ErrUnauthorized)
	assert.DirExists(t, filepath.Join(base, "cats"))

	require.NoError(t, categories.Delete("cats", testPassword))

	// the category is gone for listings too
	_, err := emoticons.List("cats")
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	assert.ErrorIs(t, categories.Delete("cats", testPassword), ErrCategoryNotFound)
}

func TestEmoticonServiceListURLs(t *testing.T) {
	_, emoticons, base := newGallery(t)
	seed(t, base, "my cats", "icon_002.png", "icon_001.png")

	list, err := emoticons.List("my cats")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "icon_001.png", list[0].Filename)
	assert.Equal(t, "/emoticons/my%20cats/icon_001.png", list[0].URL)
}

func TestEmoticonServiceDeleteCascade(t *testing.T) {
	categories, emoticons, base := newGallery(t)
	seed(t, base, "cats", "icon_001.png")

	assert.ErrorIs(t, emoticons.Delete("cats", "icon_001.png", ""), ErrUnauthorized)
	assert.ErrorIs(t, emoticons.Delete("cats", "icon_404.png", testPassword), ErrFileNotFound)

	require.NoError(t, emoticons.Delete("cats", "icon_001.png", testPassword))

	// last image deleted: category disappears from listings
	list, err := categories.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
