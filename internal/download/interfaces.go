package download

import (
	"github.com/panelkit/panel-kiosk/internal/model"
)

// Storage persists resolved download content on the platform
type Storage interface {
	// Save creates a file entry with the given name and MIME type and writes
	// content into it. Implementations must not leave a partial file visible
	// on failure.
	Save(filename, mimeType string, content []byte) (model.PersistedFile, error)
}

// Fetcher downloads a URL to a local path with resume support
type Fetcher interface {
	FetchToFile(url, destPath string, progress func(downloaded, total int64)) error
}

// StateListener receives busy-state transitions from the orchestrator. The
// content host implements it to gate the blocking overlay; the orchestrator
// never touches UI state directly.
type StateListener interface {
	OnDownloadStart()
	OnDownloadEnd(outcome model.DownloadOutcome)
}

// Result is the terminal record of one download attempt
type Result struct {
	ID      string // per-attempt ID, used for log correlation only
	Outcome model.DownloadOutcome
	File    model.PersistedFile // valid when Outcome is OutcomeSaved
	Err     error               // set when Outcome is a failure
}
