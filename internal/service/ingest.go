package service

import (
	"archive/zip"
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/facette/natsort"
	"github.com/nfnt/resize"

	_ "image/gif"

	_ "golang.org/x/image/webp"

	"EmoticonBackend/config"
	"EmoticonBackend/internal/logger"
	"EmoticonBackend/internal/model"
	"EmoticonBackend/internal/repository/fsstore"
)

// FormatRule describes how the pipeline treats one image format. The
// format table is injected into the service so adding a format does
// not touch control flow.
type FormatRule struct {
	// Resizable formats are re-encoded at a smaller size when they
	// exceed the dimension limit. GIF is not resizable: re-encoding
	// would destroy animation.
	Resizable bool
	// RawWhenUnreadable stores the original bytes untouched when
	// metadata cannot be decoded. Some animated GIFs are opaque to the
	// decoder but perfectly fine for browsers.
	RawWhenUnreadable bool
}

// DefaultFormats is the recognized format table.
func DefaultFormats() map[string]FormatRule {
	return map[string]FormatRule{
		".png":  {Resizable: true},
		".jpg":  {Resizable: true},
		".jpeg": {Resizable: true},
		".gif":  {RawWhenUnreadable: true},
		".webp": {Resizable: true},
	}
}

var allowedImageMIME = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
	"image/webp": true,
}

var zipMIME = map[string]bool{
	"application/zip":              true,
	"application/x-zip-compressed": true,
}

// IngestOutcome is the result of one ingestion: exactly one of Single
// or Archive is set, matching how the payload was classified.
type IngestOutcome struct {
	Single  *model.UploadResult
	Archive *model.ArchiveSummary
}

// IngestService is the upload pipeline: classify the payload as a
// single image or a ZIP archive, validate and normalize, and write
// sequentially numbered files into the category directory.
type IngestService interface {
	Ingest(data []byte, originalName, mimeType, category, password string) (*IngestOutcome, error)
}

type ingestServiceImpl struct {
	auth    AuthService
	repo    *fsstore.EmoticonRepository
	formats map[string]FormatRule
	maxDim  int
}

func NewIngestService(auth AuthService, repo *fsstore.EmoticonRepository, formats map[string]FormatRule) IngestService {
	if formats == nil {
		formats = DefaultFormats()
	}
	return &ingestServiceImpl{
		auth:    auth,
		repo:    repo,
		formats: formats,
		maxDim:  config.MaxImageSize,
	}
}

func (s *ingestServiceImpl) Ingest(data []byte, originalName, mimeType, category, password string) (*IngestOutcome, error) {
	if !s.auth.Verify(password) {
		return nil, ErrUnauthorized
	}
	if len(data) == 0 {
		return nil, ErrMissingFile
	}
	if category == "" {
		return nil, ErrMissingCategory
	}
	if !fsstore.ValidName(category) {
		return nil, ErrInvalidCategory
	}

	// MIME-first classification, filename suffix as fallback.
	isZip := zipMIME[mimeType] || strings.HasSuffix(strings.ToLower(originalName), ".zip")

	if isZip {
		if int64(len(data)) > config.MaxZipFileSize {
			return nil, &PayloadTooLargeError{Limit: config.MaxZipFileSize}
		}
		summary, err := s.ingestArchive(data, category)
		if err != nil {
			return nil, err
		}
		return &IngestOutcome{Archive: summary}, nil
	}

	if mimeType != "" && !allowedImageMIME[mimeType] {
		return nil, ErrUnsupportedType
	}
	if int64(len(data)) > config.MaxImageFileSize {
		return nil, &PayloadTooLargeError{Limit: config.MaxImageFileSize}
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".png"
	}

	result, err := s.saveImage(data, category, ext, false)
	if err != nil {
		return nil, err
	}
	return &IngestOutcome{Single: result}, nil
}

// saveImage runs the single-image path: decode metadata, enforce the
// dimension limit, resize when the format allows it, and store under
// the next sequential filename. With skipOversized set, an image that
// cannot fit returns (nil, nil) instead of an error; archive entries
// use that so one oversized file never aborts the batch.
func (s *ingestServiceImpl) saveImage(data []byte, category, ext string, skipOversized bool) (*model.UploadResult, error) {
	rule, ok := s.formats[ext]
	if !ok {
		return nil, ErrUnsupportedType
	}

	meta, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if rule.RawWhenUnreadable {
			return s.store(category, ext, data)
		}
		return nil, &UnreadableImageError{Cause: err}
	}

	oversized := meta.Width > s.maxDim || meta.Height > s.maxDim

	if !rule.Resizable {
		if oversized {
			if skipOversized {
				return nil, nil
			}
			return nil, &OversizeError{Width: meta.Width, Height: meta.Height, Max: s.maxDim}
		}
		return s.store(category, ext, data)
	}

	if !oversized {
		return s.store(category, ext, data)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &UnreadableImageError{Cause: err}
	}

	// Contain-fit: both dimensions end up within the limit, aspect
	// ratio preserved, and Thumbnail never upscales.
	thumb := resize.Thumbnail(uint(s.maxDim), uint(s.maxDim), img, resize.Lanczos3)

	var buf bytes.Buffer
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, thumb, nil)
	default:
		// No pure-Go webp encoder exists; a resized webp comes back
		// PNG-encoded and browsers sniff the content.
		err = png.Encode(&buf, thumb)
	}
	if err != nil {
		return nil, err
	}

	return s.store(category, ext, buf.Bytes())
}

func (s *ingestServiceImpl) store(category, ext string, data []byte) (*model.UploadResult, error) {
	filename, err := s.repo.Save(category, ext, data)
	if err != nil {
		return nil, err
	}
	return &model.UploadResult{
		Filename: filename,
		URL:      emoticonURL(category, filename),
	}, nil
}

// ingestArchive extracts a ZIP archive into the category. Directory
// entries, macOS resource-fork artifacts and non-image entries are
// discarded; the survivors are processed in natural sort order, which
// fixes the sequential numbers they receive.
func (s *ingestServiceImpl) ingestArchive(data []byte, category string) (*model.ArchiveSummary, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, ErrInvalidArchive
	}

	var entries []*zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := f.Name
		if strings.Contains(name, "__MACOSX") || strings.HasPrefix(path.Base(name), "._") {
			continue
		}
		if _, ok := s.formats[strings.ToLower(path.Ext(name))]; !ok {
			continue
		}
		entries = append(entries, f)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyArchive
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return natsort.Compare(strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name))
	})

	summary := &model.ArchiveSummary{Uploaded: []string{}}
	for _, entry := range entries {
		entryData, err := readZipEntry(entry)
		if err != nil {
			logger.Get().Warn().Err(err).Str("entry", entry.Name).Msg("failed to read archive entry")
			summary.Failed = append(summary.Failed, model.EntryIssue{Entry: entry.Name, Reason: "could not be read"})
			continue
		}

		ext := strings.ToLower(path.Ext(entry.Name))
		if ext == "" {
			ext = ".png"
		}

		result, err := s.saveImage(entryData, category, ext, true)
		if err != nil {
			logger.Get().Warn().Err(err).Str("entry", entry.Name).Msg("failed to process archive entry")
			summary.Failed = append(summary.Failed, model.EntryIssue{Entry: entry.Name, Reason: err.Error()})
			continue
		}
		if result == nil {
			summary.Skipped = append(summary.Skipped, model.EntryIssue{Entry: entry.Name, Reason: "exceeds max dimensions"})
			continue
		}
		summary.Uploaded = append(summary.Uploaded, result.Filename)
	}

	if len(summary.Uploaded) == 0 {
		return nil, ErrAllOversized
	}

	return summary, nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
