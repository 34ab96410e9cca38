package ingest

import (
	"os"
	"strconv"
)

const defaultMaxUploadSize = 10 * 1024 * 1024 // 10MB

// Config carries ingestion settings. It is threaded into the adapters
// explicitly instead of being read from ambient globals.
type Config struct {
	UploadDir     string
	TesseractCmd  string
	MaxUploadSize int64
}

func ConfigFromEnv() Config {
	cfg := Config{
		UploadDir:     os.Getenv("UPLOAD_DIR"),
		TesseractCmd:  os.Getenv("TESSERACT_CMD"),
		MaxUploadSize: defaultMaxUploadSize,
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil && size > 0 {
			cfg.MaxUploadSize = size
		}
	}
	return cfg
}
