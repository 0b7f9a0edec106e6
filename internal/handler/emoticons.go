package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"EmoticonBackend/config"
	"EmoticonBackend/internal/service"
)

// ListEmoticons returns a category's images sorted by the number in
// their filenames. 404 when the category does not exist.
func ListEmoticons(s service.EmoticonService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		category := vars["category"]

		emoticons, err := s.List(category)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		for i := range emoticons {
			emoticons[i].URL = cfg.BaseURL + emoticons[i].URL
		}

		writeJSON(w, http.StatusOK, emoticons)
	}
}

// DeleteEmoticon removes a single image; the category directory goes
// with it when that was the last image. Requires the upload password
// in the JSON body.
func DeleteEmoticon(s service.EmoticonService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		category := vars["category"]
		filename := vars["filename"]

		if err := s.Delete(category, filename, decodePassword(r)); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Success: true,
			Message: "Image deleted.",
		})
	}
}
