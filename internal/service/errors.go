package service

import (
	"errors"
	"fmt"
)

// Failure taxonomy surfaced to handlers. Sentinels cover the cases
// with fixed messages; typed errors carry the details the client
// message needs.
var (
	ErrUnauthorized     = errors.New("invalid password")
	ErrMissingCategory  = errors.New("category is required")
	ErrInvalidCategory  = errors.New("invalid category name")
	ErrMissingFile      = errors.New("no file provided")
	ErrUnsupportedType  = errors.New("unsupported file type, only PNG, JPG, GIF, WEBP and ZIP are accepted")
	ErrCategoryNotFound = errors.New("category not found")
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidArchive   = errors.New("zip archive could not be read")
	ErrEmptyArchive     = errors.New("zip archive contains no image files")
	ErrAllOversized     = errors.New("every image in the archive exceeded the size limit")
)

// PayloadTooLargeError signals a payload rejected before any
// processing because it exceeds the configured byte limit.
type PayloadTooLargeError struct {
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("file size must be at most %dMB", e.Limit/(1024*1024))
}

// UnreadableImageError signals image bytes whose metadata could not be
// decoded.
type UnreadableImageError struct {
	Cause error
}

func (e *UnreadableImageError) Error() string {
	return "image file could not be read"
}

func (e *UnreadableImageError) Unwrap() error { return e.Cause }

// OversizeError signals an image whose dimensions exceed the allowed
// square and whose format cannot be resized.
type OversizeError struct {
	Width, Height, Max int
}

func (e *OversizeError) Error() string {
	return fmt.Sprintf("image dimensions must be at most %dx%d pixels (got %dx%d)",
		e.Max, e.Max, e.Width, e.Height)
}
