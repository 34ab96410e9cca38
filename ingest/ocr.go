package ingest

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// OCR processing statuses. Failures are encoded in the status, never
// returned as errors: image ingestion proceeds with a degraded draft.
const (
	StatusProcessed             = "processed"
	StatusNoTextDetected        = "no_text_detected"
	StatusTesseractNotAvailable = "tesseract_not_available"

	// StatusImageLibsNotAvailable belongs to the status vocabulary that
	// consumers of attachment rows must handle. The exec-based extractor
	// has no separate image-library failure mode and never emits it.
	StatusImageLibsNotAvailable = "image_processing_libraries_not_available"
)

const ocrTimeout = 60 * time.Second

type OCR struct {
	cfg Config
}

func NewOCR(cfg Config) *OCR {
	return &OCR{cfg: cfg}
}

// ExtractTextFromImage runs the tesseract binary over the image and returns
// the recognized text together with a processing status.
func (o *OCR) ExtractTextFromImage(ctx context.Context, path string) (string, string) {
	cmd := o.cfg.TesseractCmd
	if cmd == "" {
		cmd = "tesseract"
	}

	if _, err := exec.LookPath(cmd); err != nil {
		return "", StatusTesseractNotAvailable
	}

	ctx, cancel := context.WithTimeout(ctx, ocrTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, cmd, path, "stdout", "-l", "eng").Output()
	if err != nil {
		return "", fmt.Sprintf("error: %v", err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", StatusNoTextDetected
	}
	return text, StatusProcessed
}
