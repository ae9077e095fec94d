package download

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.bug.st/downloader/v2"
)

// Fetch tuning
const (
	FetchRetryMax     = 2
	FetchPollInterval = 250 * time.Millisecond
)

// HTTPFetcher implements Fetcher with the resumable downloader over a
// retrying HTTP client. The embedded page's origin is a local device, so
// transient failures during a download are common enough to retry.
type HTTPFetcher struct {
	client       *http.Client
	pollInterval time.Duration
}

// NewHTTPFetcher creates a fetcher identifying itself with userAgent
func NewHTTPFetcher(userAgent string) *HTTPFetcher {
	rc := retryablehttp.NewClient()
	rc.RetryMax = FetchRetryMax
	rc.Logger = nil

	client := rc.StandardClient()
	client.Transport = &identifyingTransport{base: client.Transport, userAgent: userAgent}

	return &HTTPFetcher{
		client:       client,
		pollInterval: FetchPollInterval,
	}
}

// identifyingTransport stamps the composed user-agent on outgoing requests
type identifyingTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *identifyingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(req)
}

// FetchToFile downloads url to destPath, resuming a partial file when the
// server supports ranges. progress may be nil.
func (f *HTTPFetcher) FetchToFile(url, destPath string, progress func(downloaded, total int64)) error {
	d, err := downloader.DownloadWithConfig(destPath, url, downloader.Config{
		HttpClient: *f.client,
	})
	if err != nil {
		return fmt.Errorf("failed to start download: %w", err)
	}

	err = d.RunAndPoll(func(downloaded int64) {
		if progress != nil {
			progress(downloaded, d.Size())
		}
	}, f.pollInterval)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	if d.Error() != nil {
		return fmt.Errorf("download failed: %w", d.Error())
	}
	return nil
}
