package usecase

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var acceptedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var acceptedMimeTypes = map[string]bool{
	"image/jpg":  true,
	"image/jpeg": true,
	"image/png":  true,
}

// isAcceptedType checks the extension and the declared mime type against the
// allow-list, case-insensitively. Both have to match.
func isAcceptedType(ext, mimeType string) bool {
	return acceptedExtensions[strings.ToLower(ext)] &&
		acceptedMimeTypes[strings.ToLower(mimeType)]
}

// chooseStorageName builds the stored filename as <unix-millis>-<base-name>.
// The millisecond prefix keeps collisions unlikely without guaranteeing
// uniqueness. Directory components in hostile client names are stripped; a
// name with no usable base falls back to a generated stem.
func chooseStorageName(originalName string, now time.Time) string {
	base := filepath.Base(strings.TrimSpace(originalName))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = uuid.NewString()
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}
