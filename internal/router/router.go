package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"EmoticonBackend/config"
	"EmoticonBackend/internal/handler"
	"EmoticonBackend/internal/logger"
	"EmoticonBackend/internal/repository/fsstore"
	"EmoticonBackend/internal/service"
)

func setCORSHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Get().Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// NewRouter wires the filesystem store, services and handlers onto a
// mux router and mounts the static frontend and image directories.
func NewRouter(cfg *config.Config) *mux.Router {
	locks := fsstore.NewCategoryLocks()
	categoryRepo := fsstore.NewCategoryRepository(cfg.EmoticonPath, locks)
	emoticonRepo := fsstore.NewEmoticonRepository(cfg.EmoticonPath, locks)

	auth := service.NewAuthService(cfg.UploadPassword)
	categoryService := service.NewCategoryService(categoryRepo, auth)
	emoticonService := service.NewEmoticonService(emoticonRepo, auth)
	ingestService := service.NewIngestService(auth, emoticonRepo, nil)

	r := mux.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(setCORSHeaders)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/categories", handler.ListCategories(categoryService, cfg)).Methods("GET")
	api.HandleFunc("/categories/{category}", handler.DeleteCategory(categoryService, cfg)).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/emoticons/{category}", handler.ListEmoticons(emoticonService, cfg)).Methods("GET")
	api.HandleFunc("/emoticons/{category}/{filename}", handler.DeleteEmoticon(emoticonService, cfg)).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/upload", handler.Upload(ingestService, cfg)).Methods("POST", "OPTIONS")

	r.PathPrefix("/emoticons/").Handler(http.StripPrefix("/emoticons/", http.FileServer(http.Dir(cfg.EmoticonPath))))
	r.PathPrefix("/").Handler(http.FileServer(http.Dir("./frontend/")))

	return r
}
