package bridge

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/panelkit/panel-kiosk/internal/model"
)

// Handler receives decoded bridge messages, one method per message kind.
// Implementations must not block; the dispatcher is called from the host's
// event loop.
type Handler interface {
	HandleDownload(req model.DownloadRequest)
	HandleBlobProcessing()
	HandleBlobData(payload model.CapturedPayload)
	HandleBlobError(message string)
}

// Dispatcher parses raw bridge text from the embedded page and routes it to
// a Handler. Malformed messages are logged and dropped; unknown message
// kinds are ignored. Nothing the page sends can surface an error to the
// user or crash the host.
type Dispatcher struct {
	handler Handler
}

// NewDispatcher creates a dispatcher bound to the given handler
func NewDispatcher(handler Handler) *Dispatcher {
	return &Dispatcher{handler: handler}
}

// Decode parses one raw JSON bridge message
func Decode(raw string) (model.BridgeMessage, error) {
	var msg model.BridgeMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return model.BridgeMessage{}, fmt.Errorf("failed to parse bridge message: %w", err)
	}
	return msg, nil
}

// DefaultQueueCapacity bounds how many undispatched messages a queue holds
const DefaultQueueCapacity = 64

// Queue feeds raw bridge messages to a dispatcher one at a time, preserving
// arrival order. Order matters: a blob_data must not be dispatched before
// the blob_processing that announced it, or the busy-state slot pairing in
// the orchestrator breaks. Enqueue is safe from the host's event loop; it
// blocks only when the queue is full.
type Queue struct {
	msgs chan string
}

// NewQueue creates a queue and starts its single consumer
func NewQueue(dispatcher *Dispatcher, capacity int) *Queue {
	q := &Queue{msgs: make(chan string, capacity)}
	go func() {
		for raw := range q.msgs {
			dispatcher.Dispatch(raw)
		}
	}()
	return q
}

// Enqueue hands one raw message to the consumer
func (q *Queue) Enqueue(raw string) {
	q.msgs <- raw
}

// Close stops the consumer once the queued messages drain
func (q *Queue) Close() {
	close(q.msgs)
}

// Dispatch decodes raw and invokes the matching handler method. It is safe
// to call with arbitrary page-controlled input.
func (d *Dispatcher) Dispatch(raw string) {
	msg, err := Decode(raw)
	if err != nil {
		log.Printf("bridge: dropping malformed message: %v", err)
		return
	}

	switch msg.Type {
	case model.MessageDownload:
		d.handler.HandleDownload(model.DownloadRequest{
			SourceURL:         msg.URL,
			SuggestedFilename: msg.Filename,
			SuggestedMimeType: msg.MimeType,
		})
	case model.MessageBlobProcessing:
		d.handler.HandleBlobProcessing()
	case model.MessageBlobData:
		d.handler.HandleBlobData(model.CapturedPayload{
			Filename: msg.Filename,
			MimeType: msg.MimeType,
			Data:     msg.Data,
		})
	case model.MessageBlobError:
		d.handler.HandleBlobError(msg.Error)
	default:
		log.Printf("bridge: ignoring message with unknown type %q", msg.Type)
	}
}
