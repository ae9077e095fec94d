package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyConsentedDirectory = "consented_directory_uri"
	KeyBrowserPath        = "browser_path"
	KeyKioskMode          = "kiosk_mode"
	KeyLanguage           = "app_language"
)

// Default values
const (
	DefaultKioskMode = true
	DefaultLanguage  = "system"
)

// ContentOrigin is the one page the shell renders. The shell exists to show
// this page; it is not configurable at runtime.
const ContentOrigin = "http://192.168.4.1"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// ConsentedDirectoryURI returns the URI of the directory the user granted
// write access to, or empty when no grant was recorded yet.
func (s *Settings) ConsentedDirectoryURI() string {
	return s.app.Preferences().String(KeyConsentedDirectory)
}

// SetConsentedDirectoryURI records the directory grant. An empty value
// clears it, forcing a fresh consent prompt on the next save.
func (s *Settings) SetConsentedDirectoryURI(uri string) {
	s.app.Preferences().SetString(KeyConsentedDirectory, uri)
}

// GetBrowserPath returns the engine binary override, empty for auto-detect
func (s *Settings) GetBrowserPath() string {
	return s.app.Preferences().String(KeyBrowserPath)
}

// SetBrowserPath sets the engine binary override
func (s *Settings) SetBrowserPath(path string) {
	s.app.Preferences().SetString(KeyBrowserPath, path)
}

// GetKioskMode returns whether the content surface runs full screen without
// browser chrome
func (s *Settings) GetKioskMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyKioskMode, DefaultKioskMode)
}

// SetKioskMode sets whether the content surface runs in kiosk mode
func (s *Settings) SetKioskMode(kiosk bool) {
	s.app.Preferences().SetBool(KeyKioskMode, kiosk)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
