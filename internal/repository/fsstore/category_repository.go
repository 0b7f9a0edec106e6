package fsstore

import (
	"os"
	"path/filepath"
	"sort"

	"EmoticonBackend/internal/model"
)

type CategoryRepository struct {
	basePath string
	locks    *CategoryLocks
}

func NewCategoryRepository(basePath string, locks *CategoryLocks) *CategoryRepository {
	return &CategoryRepository{basePath: basePath, locks: locks}
}

// List returns every category holding at least one recognized image,
// with its image count. An empty directory is not a category. Results
// are sorted alphabetically; directory enumeration order is
// filesystem-dependent and would make listings nondeterministic.
func (r *CategoryRepository) List() ([]model.Category, error) {
	entries, err := os.ReadDir(r.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Category{}, nil
		}
		return nil, err
	}

	categories := []model.Category{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		count, err := r.CountImages(entry.Name())
		if err != nil {
			return nil, err
		}
		if count > 0 {
			categories = append(categories, model.Category{
				Name:        entry.Name(),
				DisplayName: entry.Name(),
				Count:       count,
			})
		}
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	return categories, nil
}

// Exists reports whether the category directory is present.
func (r *CategoryRepository) Exists(name string) bool {
	if !ValidName(name) {
		return false
	}
	info, err := os.Stat(filepath.Join(r.basePath, name))
	return err == nil && info.IsDir()
}

// CountImages counts files with recognized image extensions in the
// category directory. A missing directory counts as zero.
func (r *CategoryRepository) CountImages(name string) (int, error) {
	if !ValidName(name) {
		return 0, nil
	}
	files, err := os.ReadDir(filepath.Join(r.basePath, name))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for _, f := range files {
		if !f.IsDir() && IsImageFile(f.Name()) {
			count++
		}
	}
	return count, nil
}

// Delete removes the category directory and everything in it. Returns
// os.ErrNotExist when the category is absent.
func (r *CategoryRepository) Delete(name string) error {
	if !ValidName(name) {
		return os.ErrNotExist
	}

	unlock := r.locks.Lock(name)
	defer unlock()

	path := filepath.Join(r.basePath, name)
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return os.ErrNotExist
	}

	return os.RemoveAll(path)
}
