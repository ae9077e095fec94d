package download

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestHTTPFetcherFetchToFile(t *testing.T) {
	content := []byte("%PDF-1.7 panel export payload")
	var gotUserAgent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write(content)
	}))
	defer srv.Close()

	userAgent := "PanelKiosk/1.0.0 (Linux 6.1; panel; Desktop; Device)"
	fetcher := NewHTTPFetcher(userAgent)
	destPath := filepath.Join(t.TempDir(), "report.pdf")

	err := fetcher.FetchToFile(srv.URL+"/files/report.pdf", destPath, func(downloaded, total int64) {})
	if err != nil {
		t.Fatalf("FetchToFile failed: %v", err)
	}

	saved, err := os.ReadFile(destPath)
	if err != nil {
		t.Fatalf("Destination file not readable: %v", err)
	}
	if string(saved) != string(content) {
		t.Errorf("Expected %q, got %q", content, saved)
	}
	if gotUserAgent != userAgent {
		t.Errorf("Expected User-Agent %q on the request, got %q", userAgent, gotUserAgent)
	}
}

func TestHTTPFetcherRefusesUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	fetcher := NewHTTPFetcher("PanelKiosk/1.0.0")
	destPath := filepath.Join(t.TempDir(), "missing.pdf")

	if err := fetcher.FetchToFile(srv.URL+"/files/missing.pdf", destPath, nil); err == nil {
		t.Error("Expected an error when the server is unreachable")
	}
}
