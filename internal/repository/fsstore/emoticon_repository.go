package fsstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type EmoticonRepository struct {
	basePath string
	locks    *CategoryLocks
}

func NewEmoticonRepository(basePath string, locks *CategoryLocks) *EmoticonRepository {
	return &EmoticonRepository{basePath: basePath, locks: locks}
}

// List returns the image filenames of a category sorted ascending by
// the numeric value of the first digit run in each name, so icon_002
// precedes icon_010 regardless of creation time. Returns
// os.ErrNotExist when the category directory is missing.
func (r *EmoticonRepository) List(category string) ([]string, error) {
	if !ValidName(category) {
		return nil, os.ErrNotExist
	}

	files, err := os.ReadDir(filepath.Join(r.basePath, category))
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, f := range files {
		if !f.IsDir() && IsImageFile(f.Name()) {
			names = append(names, f.Name())
		}
	}

	sort.SliceStable(names, func(i, j int) bool {
		return firstNumber(names[i]) < firstNumber(names[j])
	})

	return names, nil
}

// Save writes image bytes under the next sequential filename
// (icon_NNN + ext, NNN = existing image count + 1) and returns the
// name. The category directory is created if absent. Count and write
// happen under the category lock so concurrent saves cannot claim the
// same number.
func (r *EmoticonRepository) Save(category, ext string, data []byte) (string, error) {
	if !ValidName(category) {
		return "", os.ErrNotExist
	}

	unlock := r.locks.Lock(category)
	defer unlock()

	dir := filepath.Join(r.basePath, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	next := 1
	for _, f := range files {
		if !f.IsDir() && IsImageFile(f.Name()) {
			next++
		}
	}

	filename := fmt.Sprintf("icon_%03d%s", next, ext)
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", err
	}

	return filename, nil
}

// Delete removes one image file, then re-scans the directory and
// removes the category too when no recognized images remain. The
// cascade's outcome does not affect the reported success of the file
// deletion itself; a leftover directory only holds non-image files and
// never shows up in listings.
func (r *EmoticonRepository) Delete(category, filename string) error {
	if !ValidName(category) || !ValidName(filename) {
		return os.ErrNotExist
	}

	unlock := r.locks.Lock(category)
	defer unlock()

	dir := filepath.Join(r.basePath, category)
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		return os.ErrNotExist
	}

	if err := os.Remove(path); err != nil {
		return err
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, f := range files {
		if !f.IsDir() && IsImageFile(f.Name()) {
			return nil
		}
	}
	os.RemoveAll(dir)

	return nil
}
