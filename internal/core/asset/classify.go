// Package asset holds pure asset-classification logic.
package asset

import (
	"path/filepath"
	"strings"

	"github.com/example/creatorvault/internal/models"
)

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// TypeForFile classifies a picked file as an image or a generic file based
// on its extension.
func TypeForFile(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if imageExtensions[ext] {
		return models.AssetImage
	}
	return models.AssetFile
}
