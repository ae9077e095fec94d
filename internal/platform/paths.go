package platform

import (
	"net/url"
	"strings"
)

// Storage URI prefixes stripped for display
const (
	PrimaryVolumePrefix = "primary:"
)

// DisplayPath derives a human-readable path from a platform storage URI.
// Document-provider URIs encode the real path in the final segment
// (percent-encoded, prefixed with the volume name, with ':' separating the
// volume-relative path), e.g.
//
//	content://.../document/primary%3ADownload%2Freport.pdf -> Download/report.pdf
func DisplayPath(savedURI string) string {
	segments := strings.Split(savedURI, "/")
	last := segments[len(segments)-1]

	decoded, err := url.PathUnescape(last)
	if err != nil {
		decoded = last
	}

	clean := strings.TrimPrefix(decoded, PrimaryVolumePrefix)
	return strings.ReplaceAll(clean, ":", "/")
}
