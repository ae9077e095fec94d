package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
)

// fakeConsentCache is an in-memory ConsentCache for tests
type fakeConsentCache struct {
	uri string
}

func (c *fakeConsentCache) ConsentedDirectoryURI() string       { return c.uri }
func (c *fakeConsentCache) SetConsentedDirectoryURI(uri string) { c.uri = uri }

func TestDocumentsStorageSave(t *testing.T) {
	dir := t.TempDir()
	s := NewDocumentsStorage(dir)

	file, err := s.Save("report.csv", "text/csv", []byte("a,b\n1,2\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if file.Filename != "report.csv" || file.MimeType != "text/csv" {
		t.Errorf("Unexpected persisted file: %+v", file)
	}
	if !strings.HasPrefix(file.URI, "file://") {
		t.Errorf("Expected file URI, got %s", file.URI)
	}

	content, err := os.ReadFile(filepath.Join(dir, "report.csv"))
	if err != nil {
		t.Fatalf("Expected saved file on disk, got %v", err)
	}
	if string(content) != "a,b\n1,2\n" {
		t.Errorf("Unexpected content: %q", content)
	}
}

func TestDocumentsStorageCreatesRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "Documents")
	s := NewDocumentsStorage(dir)

	if _, err := s.Save("a.txt", "text/plain", []byte("hello")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.txt")); err != nil {
		t.Errorf("Expected file in created root, got %v", err)
	}
}

func TestDocumentsStorageLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	s := NewDocumentsStorage(dir)

	if _, err := s.Save("ok.bin", "application/octet-stream", []byte{1, 2, 3}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".part") {
			t.Errorf("Partial file left behind: %s", entry.Name())
		}
	}
}

func TestConsentedDirStorageSave(t *testing.T) {
	test.NewApp()
	dir := t.TempDir()

	prompts := 0
	prompt := func() (fyne.ListableURI, error) {
		prompts++
		return storage.ListerForURI(storage.NewFileURI(dir))
	}

	cache := &fakeConsentCache{}
	s := NewConsentedDirStorage(cache, prompt)

	file, err := s.Save("export.json", "application/json", []byte(`{"ok":true}`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if file.Filename != "export.json" {
		t.Errorf("Unexpected filename: %s", file.Filename)
	}

	content, err := os.ReadFile(filepath.Join(dir, "export.json"))
	if err != nil {
		t.Fatalf("Expected saved file, got %v", err)
	}
	if string(content) != `{"ok":true}` {
		t.Errorf("Unexpected content: %q", content)
	}

	// Second save reuses the cached grant without prompting again.
	if _, err := s.Save("second.txt", "text/plain", []byte("x")); err != nil {
		t.Fatalf("Expected no error on second save, got %v", err)
	}
	if prompts != 1 {
		t.Errorf("Expected exactly 1 consent prompt, got %d", prompts)
	}
	if cache.uri == "" {
		t.Error("Expected grant to be cached")
	}
}

func TestConsentedDirStorageDenied(t *testing.T) {
	test.NewApp()

	prompt := func() (fyne.ListableURI, error) {
		return nil, nil // user dismissed the prompt
	}

	s := NewConsentedDirStorage(&fakeConsentCache{}, prompt)

	_, err := s.Save("secret.pdf", "application/pdf", []byte("x"))
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}

func TestConsentedDirStorageStaleCacheReprompts(t *testing.T) {
	test.NewApp()
	dir := t.TempDir()

	prompts := 0
	prompt := func() (fyne.ListableURI, error) {
		prompts++
		return storage.ListerForURI(storage.NewFileURI(dir))
	}

	// Cached grant points at a directory that no longer exists.
	cache := &fakeConsentCache{uri: "file:///nonexistent/gone"}
	s := NewConsentedDirStorage(cache, prompt)

	if _, err := s.Save("a.txt", "text/plain", []byte("x")); err != nil {
		t.Fatalf("Expected re-prompted save to succeed, got %v", err)
	}
	if prompts != 1 {
		t.Errorf("Expected 1 prompt after stale cache, got %d", prompts)
	}
}
