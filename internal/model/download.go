package model

// DownloadRequest describes a download detected by URL alone: a vetoed
// navigation, an engine-native download event, or a "download" bridge
// message. It is consumed exactly once by the orchestrator.
type DownloadRequest struct {
	SourceURL         string
	SuggestedFilename string // optional hint, may be empty
	SuggestedMimeType string // optional hint, may be empty
}

// CapturedPayload carries bytes the page already captured and encoded as
// base64 text. No network fetch is needed to persist it.
type CapturedPayload struct {
	Filename string
	MimeType string
	Data     string // base64-encoded file content
}

// PersistedFile records a successful platform storage write. The URI format
// is storage-specific and may need prettifying before display.
type PersistedFile struct {
	URI      string
	Filename string
	MimeType string
}
