package constants

import "strings"

// FileTypes holds the allowed source formats for the format field in Extraction.
var FileTypes = []string{"PDF", "IMAGE"}

// AllowedExtensions holds the default allowed file extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FormatForExt maps a normalized extension to its source format, or "" if unsupported.
func FormatForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "jpg", "jpeg", "png", "tif", "tiff":
		return "IMAGE"
	default:
		return ""
	}
}
