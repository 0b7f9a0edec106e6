package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Upload limits. Deployment constants, not negotiated with clients.
const (
	MaxImageFileSize = 1 * 1024 * 1024  // single image upload
	MaxZipFileSize   = 20 * 1024 * 1024 // zip archive upload
	MaxImageSize     = 200              // max width/height in pixels
)

// DefaultPassword is the insecure fallback used when UPLOAD_PASSWORD is
// unset. Deployments are expected to override it; main logs a warning
// when they don't.
const DefaultPassword = "default123"

type Config struct {
	Port           string
	UploadPassword string
	EmoticonPath   string
	BaseURL        string
}

func Load() (*Config, error) {
	// Missing .env is fine, the process environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		UploadPassword: os.Getenv("UPLOAD_PASSWORD"),
		EmoticonPath:   os.Getenv("EMOTICON_PATH"),
		BaseURL:        os.Getenv("BASE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.UploadPassword == "" {
		cfg.UploadPassword = DefaultPassword
	}
	if cfg.EmoticonPath == "" {
		cfg.EmoticonPath = "./_emoticons"
	}

	return cfg, nil
}
