package download

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/panelkit/panel-kiosk/internal/mimetype"
	"github.com/panelkit/panel-kiosk/internal/model"
	"github.com/panelkit/panel-kiosk/internal/platform"
)

// FallbackFilenamePrefix names downloads whose URL carries no usable segment
const FallbackFilenamePrefix = "download_"

// Service orchestrates download handling. Attempts are independent and are
// not deduplicated: two captures of the same logical download each produce
// their own persisted file and outcome.
type Service struct {
	storage  Storage
	fetcher  Fetcher
	cacheDir string

	mu              sync.Mutex
	active          int
	pendingCaptures int
	listener        StateListener
	onResult        func(Result)
}

// NewService creates a new download orchestrator. cacheDir holds in-flight
// fetches before they are handed to storage.
func NewService(storage Storage, fetcher Fetcher, cacheDir string) *Service {
	return &Service{
		storage:  storage,
		fetcher:  fetcher,
		cacheDir: cacheDir,
	}
}

// SetStateListener sets the busy-state transition receiver
func (s *Service) SetStateListener(listener StateListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = listener
}

// SetResultCallback sets the callback invoked with every terminal result
func (s *Service) SetResultCallback(callback func(Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResult = callback
}

// HandleRequest resolves a bare-URL download: derive filename and MIME,
// fetch to the cache, persist, report. Always returns a terminal result;
// the busy state is cleared on every path.
func (s *Service) HandleRequest(req model.DownloadRequest) Result {
	id := uuid.NewString()
	s.begin(id, req.SourceURL, false)

	filename := req.SuggestedFilename
	if filename == "" {
		filename = FilenameFromURL(req.SourceURL)
	}
	mime := req.SuggestedMimeType
	if mime == "" {
		mime = mimetype.Resolve(filename)
	}
	log.Printf("download %s: %s -> %s (%s)", id, req.SourceURL, filename, mime)

	content, err := s.fetchToCache(id, req.SourceURL, filename)
	if err != nil {
		return s.end(Result{ID: id, Outcome: model.OutcomeFailed, Err: err})
	}

	return s.persist(id, filename, mime, content)
}

// HandlePayload persists a payload the capture script already encoded;
// no network fetch is involved.
func (s *Service) HandlePayload(payload model.CapturedPayload) Result {
	id := uuid.NewString()
	s.begin(id, "captured payload", true)
	return s.finishPayload(id, payload)
}

// AcceptPayload claims the busy slot for a captured payload before returning,
// so the slot its blob_processing message raised is consumed in arrival
// order, then decodes and persists in the background.
func (s *Service) AcceptPayload(payload model.CapturedPayload) {
	id := uuid.NewString()
	s.begin(id, "captured payload", true)
	go s.finishPayload(id, payload)
}

// finishPayload decodes and persists one captured payload
func (s *Service) finishPayload(id string, payload model.CapturedPayload) Result {
	filename := payload.Filename
	if filename == "" {
		filename = FallbackFilename()
	}
	mime := payload.MimeType
	if mime == "" {
		mime = mimetype.Resolve(filename)
	}
	log.Printf("download %s: decoding captured payload -> %s (%s)", id, filename, mime)

	content, err := base64.StdEncoding.DecodeString(payload.Data)
	if err != nil {
		return s.end(Result{ID: id, Outcome: model.OutcomeFailed,
			Err: fmt.Errorf("failed to decode payload: %w", err)})
	}

	return s.persist(id, filename, mime, content)
}

// NotifyProcessing raises the busy state for a capture announced by the
// page. The matching blob_data or blob_error message balances it.
func (s *Service) NotifyProcessing() {
	s.mu.Lock()
	s.active++
	s.pendingCaptures++
	first := s.active == 1
	listener := s.listener
	s.mu.Unlock()

	if first && listener != nil {
		listener.OnDownloadStart()
	}
}

// NotifyCaptureError reports a capture failure from inside the page as a
// failed attempt, balancing the blob_processing that preceded it.
func (s *Service) NotifyCaptureError(message string) {
	id := uuid.NewString()
	log.Printf("download %s: capture failed in page: %s", id, message)

	s.mu.Lock()
	if s.pendingCaptures > 0 {
		s.pendingCaptures--
	}
	s.mu.Unlock()

	s.end(Result{ID: id, Outcome: model.OutcomeFailed,
		Err: fmt.Errorf("capture failed: %s", message)})
}

// fetchToCache downloads url into the cache directory and returns the bytes.
// The cached copy is removed in all cases.
func (s *Service) fetchToCache(id, sourceURL, filename string) ([]byte, error) {
	if err := platform.CreateDirectoryIfNotExists(s.cacheDir); err != nil {
		return nil, fmt.Errorf("failed to ensure cache dir: %w", err)
	}

	cachePath := filepath.Join(s.cacheDir, id+"_"+filepath.Base(filename))
	defer os.Remove(cachePath)

	err := s.fetcher.FetchToFile(sourceURL, cachePath, func(downloaded, total int64) {
		if total > 0 {
			log.Printf("download %s: %d/%d bytes", id, downloaded, total)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", sourceURL, err)
	}

	content, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fetched file: %w", err)
	}
	return content, nil
}

// persist hands the resolved bytes to storage and reports the outcome.
// Filenames are flattened to their base name so page-supplied hints cannot
// point outside the destination directory.
func (s *Service) persist(id, filename, mime string, content []byte) Result {
	filename = filepath.Base(filename)

	file, err := s.storage.Save(filename, mime, content)
	if err != nil {
		outcome := model.OutcomeFailed
		if errors.Is(err, platform.ErrPermissionDenied) {
			outcome = model.OutcomePermissionDenied
		}
		return s.end(Result{ID: id, Outcome: outcome, Err: err})
	}

	log.Printf("download %s: saved to %s", id, file.URI)
	return s.end(Result{ID: id, Outcome: model.OutcomeSaved, File: file})
}

// begin raises the busy state for one attempt. A payload attempt consumes
// the busy slot its blob_processing message already raised, so a capture is
// counted once, not twice.
func (s *Service) begin(id, source string, fromCapture bool) {
	log.Printf("download %s: started (%s)", id, source)

	s.mu.Lock()
	if fromCapture && s.pendingCaptures > 0 {
		s.pendingCaptures--
		s.mu.Unlock()
		return
	}
	s.active++
	first := s.active == 1
	listener := s.listener
	s.mu.Unlock()

	if first && listener != nil {
		listener.OnDownloadStart()
	}
}

// end lowers the busy state and delivers the terminal result. Overlapping
// attempts keep the busy state up until the last one ends; an end with no
// counted start delivers its result without notifying the listener.
func (s *Service) end(result Result) Result {
	if result.Err != nil {
		log.Printf("download %s: %s: %v", result.ID, result.Outcome, result.Err)
	}

	s.mu.Lock()
	counted := s.active > 0
	if counted {
		s.active--
	}
	last := counted && s.active == 0
	listener := s.listener
	onResult := s.onResult
	s.mu.Unlock()

	if last && listener != nil {
		listener.OnDownloadEnd(result.Outcome)
	}
	if onResult != nil {
		onResult(result)
	}
	return result
}

// FilenameFromURL derives a filename from the final path segment of a URL,
// stripping any query string and fragment. URLs without a usable segment
// get a timestamp-based fallback name.
func FilenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" || strings.HasSuffix(u.Path, "/") {
		return FallbackFilename()
	}
	return path.Base(u.Path)
}

// FallbackFilename synthesizes a timestamp-based download name
func FallbackFilename() string {
	return fmt.Sprintf("%s%d", FallbackFilenamePrefix, time.Now().UnixMilli())
}
