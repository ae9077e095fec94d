package model

// DownloadOutcome represents the terminal result of one download attempt
type DownloadOutcome string

const (
	// OutcomeSaved means the file was persisted successfully
	OutcomeSaved DownloadOutcome = "Saved"

	// OutcomeFailed means fetch, decode, or the storage write failed
	OutcomeFailed DownloadOutcome = "Failed"

	// OutcomePermissionDenied means the user refused storage-directory consent
	OutcomePermissionDenied DownloadOutcome = "PermissionDenied"
)

// String returns the string representation of DownloadOutcome
func (o DownloadOutcome) String() string {
	return string(o)
}

// IsFailure returns true if the outcome is anything other than a saved file
func (o DownloadOutcome) IsFailure() bool {
	return o != OutcomeSaved
}

// LoadState is a snapshot of the host surface's user-visible activity. It is
// mutated only by the content host's lifecycle callbacks and the download
// orchestrator's start/end transitions.
type LoadState struct {
	Progress      float64 // 0.0 to 1.0
	IsLoading     bool
	IsDownloading bool
}
