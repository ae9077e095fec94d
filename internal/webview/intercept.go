package webview

import (
	"regexp"
	"strings"
)

// Substring markers that classify a URL as a download
var downloadMarkers = []string{"download", "/files/", "/exports/"}

// Schemes whose targets can never be navigated to, only captured
var downloadSchemes = []string{"blob:", "data:"}

// Extensions that classify a path as a file to download. The set is matched
// case-insensitively against the URL, optionally followed by a query string.
var downloadExtensions = regexp.MustCompile(
	`(?i)\.(pdf|doc|docx|xls|xlsx|ppt|pptx|txt|csv|json|xml|rtf|` +
		`jpg|jpeg|png|gif|bmp|webp|svg|` +
		`mp3|mp4|avi|mov|wav|ogg|` +
		`zip|rar|7z|tar|gz|apk|exe|dmg)(\?|$)`)

// IsDownloadURL is the navigation-intercept predicate: it reports whether a
// destination URL should be handed to the download orchestrator instead of
// being navigated to.
func IsDownloadURL(rawURL string) bool {
	for _, scheme := range downloadSchemes {
		if strings.HasPrefix(rawURL, scheme) {
			return true
		}
	}
	for _, marker := range downloadMarkers {
		if strings.Contains(rawURL, marker) {
			return true
		}
	}
	return downloadExtensions.MatchString(rawURL)
}
