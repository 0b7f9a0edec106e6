package main

import (
	"net/http"
	"os"

	"EmoticonBackend/config"
	"EmoticonBackend/internal/logger"
	"EmoticonBackend/internal/router"
	"EmoticonBackend/scripts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.Get()

	if cfg.UploadPassword == config.DefaultPassword {
		log.Warn().Msg("UPLOAD_PASSWORD is not set, using the insecure default")
	}

	if err := os.MkdirAll(cfg.EmoticonPath, 0o755); err != nil {
		log.Fatal().Err(err).Str("path", cfg.EmoticonPath).Msg("cannot create emoticon directory")
	}

	// Remove crash leftovers before anything gets listed.
	scripts.CleanupStorage(cfg.EmoticonPath)

	r := router.NewRouter(cfg)

	log.Info().Str("port", cfg.Port).Str("path", cfg.EmoticonPath).Msg("server started")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
