package handler

import (
	"fmt"
	"io"
	"net/http"

	"EmoticonBackend/config"
	"EmoticonBackend/internal/service"
)

type singleUploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type archiveUploadResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Files   []string `json:"files"`
	Skipped int      `json:"skipped,omitempty"`
	Failed  int      `json:"failed,omitempty"`
}

// Upload ingests a single image or a ZIP archive from a multipart
// form (fields: password, category, image).
func Upload(s service.IngestService, cfg *config.Config) http.HandlerFunc {
	// multipart overhead on top of the largest accepted payload
	const maxRequestBody = config.MaxZipFileSize + 1024*1024

	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

		if err := r.ParseMultipartForm(maxRequestBody); err != nil {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("file size must be at most %dMB", config.MaxZipFileSize/(1024*1024)))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			writeServiceError(w, service.ErrMissingFile)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to read uploaded file")
			return
		}

		outcome, err := s.Ingest(
			data,
			header.Filename,
			header.Header.Get("Content-Type"),
			r.FormValue("category"),
			r.FormValue("password"),
		)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if outcome.Archive != nil {
			summary := outcome.Archive
			writeJSON(w, http.StatusOK, archiveUploadResponse{
				Success: true,
				Message: fmt.Sprintf("%d images uploaded from the archive.", len(summary.Uploaded)),
				Files:   summary.Uploaded,
				Skipped: len(summary.Skipped),
				Failed:  len(summary.Failed),
			})
			return
		}

		writeJSON(w, http.StatusOK, singleUploadResponse{
			Success:  true,
			Message:  "Image uploaded.",
			Filename: outcome.Single.Filename,
			URL:      cfg.BaseURL + outcome.Single.URL,
		})
	}
}
