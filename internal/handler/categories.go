package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"EmoticonBackend/config"
	"EmoticonBackend/internal/service"
)

// ListCategories returns every non-empty category with its image
// count, sorted alphabetically.
func ListCategories(s service.CategoryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := s.List()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list categories")
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// DeleteCategory removes a category and all of its images. Requires
// the upload password in the JSON body.
func DeleteCategory(s service.CategoryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		category := vars["category"]

		if err := s.Delete(category, decodePassword(r)); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Success: true,
			Message: "Category deleted.",
		})
	}
}
