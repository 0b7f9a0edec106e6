package scripts

import (
	"os"
	"path/filepath"
	"strings"

	"EmoticonBackend/internal/logger"
	"EmoticonBackend/internal/repository/fsstore"
)

// CleanupStorage sweeps the emoticon directory tree at startup. A
// crash mid-archive can leave macOS junk or an empty category
// directory behind; a listed category must always hold at least one
// image, so both get removed here.
func CleanupStorage(basePath string) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Get().Warn().Err(err).Msg("storage cleanup: cannot read base path")
		}
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		cleanCategory(filepath.Join(basePath, entry.Name()))
	}
}

func cleanCategory(dir string) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	images := 0
	for _, f := range files {
		name := f.Name()
		if f.IsDir() && name == "__MACOSX" {
			if err := os.RemoveAll(filepath.Join(dir, name)); err == nil {
				logger.Get().Info().Str("dir", name).Msg("storage cleanup: removed macOS artifact")
			}
			continue
		}
		if !f.IsDir() && strings.HasPrefix(name, "._") {
			if err := os.Remove(filepath.Join(dir, name)); err == nil {
				logger.Get().Info().Str("file", name).Msg("storage cleanup: removed macOS artifact")
			}
			continue
		}
		if !f.IsDir() && fsstore.IsImageFile(name) {
			images++
		}
	}

	if images == 0 {
		if err := os.RemoveAll(dir); err == nil {
			logger.Get().Info().Str("category", filepath.Base(dir)).Msg("storage cleanup: removed empty category")
		}
	}
}
