package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestConsentedDirectoryURI(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No grant recorded yet
	if uri := settings.ConsentedDirectoryURI(); uri != "" {
		t.Errorf("Expected empty consented directory, got %s", uri)
	}

	// Record a grant
	grant := "content://com.android.externalstorage.documents/tree/primary%3ADownload"
	settings.SetConsentedDirectoryURI(grant)

	if uri := settings.ConsentedDirectoryURI(); uri != grant {
		t.Errorf("Expected consented directory %s, got %s", grant, uri)
	}

	// Clearing forces a fresh prompt
	settings.SetConsentedDirectoryURI("")
	if uri := settings.ConsentedDirectoryURI(); uri != "" {
		t.Errorf("Expected cleared consented directory, got %s", uri)
	}
}

func TestBrowserPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is auto-detect
	if path := settings.GetBrowserPath(); path != "" {
		t.Errorf("Expected empty browser path, got %s", path)
	}

	settings.SetBrowserPath("/usr/bin/chromium")

	if path := settings.GetBrowserPath(); path != "/usr/bin/chromium" {
		t.Errorf("Expected browser path /usr/bin/chromium, got %s", path)
	}
}

func TestKioskMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetKioskMode() {
		t.Error("Kiosk mode should default to enabled")
	}

	settings.SetKioskMode(false)

	if settings.GetKioskMode() {
		t.Error("Expected kiosk mode disabled after SetKioskMode(false)")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
