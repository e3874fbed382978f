package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// video extensions the analyzer accepts, mapped to MIME types
var videoMimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".m4v":  "video/mp4",
	".3gp":  "video/3gpp",
}

// MimeTypeForVideo resolves a video file path to its MIME type.
// Unrecognized extensions are an error rather than a guess - the model
// rejects mislabeled payloads with an opaque failure.
func MimeTypeForVideo(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if mime, ok := videoMimeTypes[ext]; ok {
		return mime, nil
	}
	return "", fmt.Errorf("unsupported video format: %s", ext)
}
