// Package fsstore implements the gallery's storage layer on top of a
// plain directory tree. A category is a subdirectory of the base path,
// an emoticon is an image file inside it. There is no manifest or
// database; directory and file existence is the source of truth.
package fsstore

import (
	"path/filepath"
	"strings"
)

// imageExtensions is the recognized image extension set, matched
// case-insensitively.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// IsImageFile reports whether the filename carries a recognized image
// extension.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ValidName rejects empty names and anything that could escape the
// base directory when joined. Callers treat invalid names as absent,
// which leaks nothing about what actually exists.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}

// firstNumber extracts the numeric value of the first run of digits in
// a filename. Filenames without digits sort as 0.
func firstNumber(name string) int {
	start := -1
	for i, r := range name {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return atoiPrefix(name[start:i])
		}
	}
	if start >= 0 {
		return atoiPrefix(name[start:])
	}
	return 0
}

func atoiPrefix(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
