package platform

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/panelkit/panel-kiosk/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// ErrPermissionDenied is returned when the user refuses (or has previously
// refused) consent for the destination directory.
var ErrPermissionDenied = errors.New("storage directory consent denied")

// ConsentFunc asks the user to pick a writable destination directory. It
// returns nil without an error when the user dismissed the prompt.
type ConsentFunc func() (fyne.ListableURI, error)

// ConsentCache remembers a granted directory across downloads. Implemented
// by config.Settings on top of Fyne preferences.
type ConsentCache interface {
	ConsentedDirectoryURI() string
	SetConsentedDirectoryURI(uri string)
}

// ConsentedDirStorage persists files into a user-consented directory,
// prompting at most once per install as long as the grant stays usable.
// Every save still tolerates denial: if the cached grant is gone or
// unwritable the prompt reappears, and a refusal aborts the save.
type ConsentedDirStorage struct {
	cache  ConsentCache
	prompt ConsentFunc
}

// NewConsentedDirStorage creates the consent-requiring storage backend
func NewConsentedDirStorage(cache ConsentCache, prompt ConsentFunc) *ConsentedDirStorage {
	return &ConsentedDirStorage{cache: cache, prompt: prompt}
}

// Save writes content as a new file entry in the consented directory
func (s *ConsentedDirStorage) Save(filename, mimeType string, content []byte) (model.PersistedFile, error) {
	dir, err := s.consentedDir()
	if err != nil {
		return model.PersistedFile{}, err
	}

	child, err := storage.Child(dir, filename)
	if err != nil {
		return model.PersistedFile{}, fmt.Errorf("failed to create file entry %q: %w", filename, err)
	}

	writer, err := storage.Writer(child)
	if err != nil {
		return model.PersistedFile{}, fmt.Errorf("failed to open %q for writing: %w", child.String(), err)
	}

	if _, err := writer.Write(content); err != nil {
		writer.Close()
		// Remove the partial entry so nothing half-written stays visible.
		if delErr := storage.Delete(child); delErr != nil {
			log.Printf("storage: failed to remove partial file %s: %v", child.String(), delErr)
		}
		return model.PersistedFile{}, fmt.Errorf("failed to write %q: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return model.PersistedFile{}, fmt.Errorf("failed to finalize %q: %w", filename, err)
	}

	return model.PersistedFile{
		URI:      child.String(),
		Filename: filename,
		MimeType: mimeType,
	}, nil
}

// consentedDir returns the granted destination directory, asking the user
// when no usable grant is cached.
func (s *ConsentedDirStorage) consentedDir() (fyne.URI, error) {
	if cached := s.cache.ConsentedDirectoryURI(); cached != "" {
		uri, err := storage.ParseURI(cached)
		if err == nil {
			if dir, err := storage.ListerForURI(uri); err == nil {
				return dir, nil
			}
		}
		log.Printf("storage: cached consent %s no longer usable, re-requesting", cached)
		s.cache.SetConsentedDirectoryURI("")
	}

	granted, err := s.prompt()
	if err != nil {
		return nil, fmt.Errorf("consent request failed: %w", err)
	}
	if granted == nil {
		return nil, ErrPermissionDenied
	}

	s.cache.SetConsentedDirectoryURI(granted.String())
	return granted, nil
}

// DocumentsStorage writes into an application-private documents directory.
// No permission prompt is required, but the files are not visible in the
// user's general downloads.
type DocumentsStorage struct {
	root string
}

// NewDocumentsStorage creates the app-private storage backend rooted at dir
func NewDocumentsStorage(dir string) *DocumentsStorage {
	return &DocumentsStorage{root: dir}
}

// Save writes content to the documents directory. The write goes through a
// temporary name so a failed write never leaves a partial file behind.
func (s *DocumentsStorage) Save(filename, mimeType string, content []byte) (model.PersistedFile, error) {
	if err := CreateDirectoryIfNotExists(s.root); err != nil {
		return model.PersistedFile{}, fmt.Errorf("failed to ensure documents dir: %w", err)
	}

	finalPath := filepath.Join(s.root, filename)
	tmpPath := finalPath + ".part"

	if err := os.WriteFile(tmpPath, content, DefaultFilePermissions); err != nil {
		os.Remove(tmpPath)
		return model.PersistedFile{}, fmt.Errorf("failed to write %q: %w", filename, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return model.PersistedFile{}, fmt.Errorf("failed to finalize %q: %w", filename, err)
	}

	return model.PersistedFile{
		URI:      "file://" + finalPath,
		Filename: filename,
		MimeType: mimeType,
	}, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// AppDocumentsDir returns the application-private documents directory
func AppDocumentsDir(appName string) (string, error) {
	if IsAndroid() {
		return filepath.Join("/sdcard/Android/data", appName, "files", "Documents"), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("failed to locate a documents directory: %w", err)
		}
		return filepath.Join(homeDir, "."+appName, "Documents"), nil
	}
	return filepath.Join(configDir, appName, "Documents"), nil
}

// AppCacheDir returns a scratch directory for in-flight fetches
func AppCacheDir(appName string) string {
	return filepath.Join(os.TempDir(), appName)
}
