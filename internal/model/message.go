package model

// MessageType identifies the kind of a message received from the injected
// capture script over the bridge channel.
type MessageType string

const (
	// MessageDownload asks the host to download a URL the page could not
	// navigate to (suppressed popup or intercepted link).
	MessageDownload MessageType = "download"

	// MessageBlobProcessing signals that the page started converting a blob;
	// the host shows the blocking download indicator.
	MessageBlobProcessing MessageType = "blob_processing"

	// MessageBlobData carries a fully captured payload as base64 text.
	MessageBlobData MessageType = "blob_data"

	// MessageBlobError signals that capture failed inside the page.
	MessageBlobError MessageType = "blob_error"
)

// BridgeMessage is the tagged union sent by the capture script. Only the
// fields relevant to Type are populated; consumers dispatch on Type and
// ignore unknown kinds.
type BridgeMessage struct {
	Type     MessageType `json:"type"`
	URL      string      `json:"url,omitempty"`
	Filename string      `json:"filename,omitempty"`
	MimeType string      `json:"mimeType,omitempty"`
	Data     string      `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
}
