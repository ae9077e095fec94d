package mimetype

import "strings"

// DefaultType is returned for unknown or missing extensions
const DefaultType = "application/octet-stream"

// table maps known lower-case file extensions to canonical MIME strings
var table = map[string]string{
	// Documents
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"txt":  "text/plain",
	"csv":  "text/csv",
	"json": "application/json",
	"xml":  "application/xml",
	"rtf":  "application/rtf",

	// Images
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"ico":  "image/x-icon",

	// Audio
	"mp3": "audio/mpeg",
	"wav": "audio/wav",
	"ogg": "audio/ogg",
	"m4a": "audio/mp4",
	"aac": "audio/aac",

	// Video
	"mp4":  "video/mp4",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",
	"wmv":  "video/x-ms-wmv",
	"flv":  "video/x-flv",
	"webm": "video/webm",

	// Archives
	"zip": "application/zip",
	"rar": "application/x-rar-compressed",
	"7z":  "application/x-7z-compressed",
	"tar": "application/x-tar",
	"gz":  "application/gzip",

	// Packages / executables
	"apk": "application/vnd.android.package-archive",
	"exe": "application/x-msdownload",
	"dmg": "application/x-apple-diskimage",
}

// Resolve returns the MIME type for a filename based on its extension.
// It never fails: unknown or missing extensions resolve to DefaultType.
func Resolve(filename string) string {
	if mime, ok := table[ExtensionOf(filename)]; ok {
		return mime
	}
	return DefaultType
}

// ExtensionOf returns the lower-cased extension of filename without the dot,
// or an empty string if the filename has no dot.
func ExtensionOf(filename string) string {
	lower := strings.ToLower(filename)
	if !strings.Contains(lower, ".") {
		return ""
	}
	parts := strings.Split(lower, ".")
	return parts[len(parts)-1]
}
