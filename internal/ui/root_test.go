package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
)

type fakeNavigator struct {
	reloads int
	backs   int
}

func (f *fakeNavigator) Reload() error { f.reloads++; return nil }
func (f *fakeNavigator) Back() error   { f.backs++; return nil }

func newTestUI(t *testing.T) *RootUI {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	return NewRootUI(window, app, &fakeNavigator{}, "Panel Kiosk", "1.0.0")
}

func TestNewRootUIStartsOnLoadingScreen(t *testing.T) {
	ui := newTestUI(t)

	if !ui.loadingBox.Visible() {
		t.Error("Loading screen should be visible before the first load completes")
	}
	if ui.errorBox.Visible() {
		t.Error("Error screen should be hidden initially")
	}
	if ui.downloadBox.Visible() {
		t.Error("Download overlay should be hidden initially")
	}
}

func TestShowLoadingResetsProgressAndClearsError(t *testing.T) {
	ui := newTestUI(t)

	ui.showError(errors.New("connection refused"))
	ui.progressBar.SetProgress(0.7)

	ui.showLoading()

	if ui.progressBar.Progress() != 0 {
		t.Errorf("Expected progress reset to 0, got %v", ui.progressBar.Progress())
	}
	if ui.errorBox.Visible() {
		t.Error("Error screen should be hidden after reload begins")
	}
	if !ui.loadingBox.Visible() {
		t.Error("Loading screen should be visible after reload begins")
	}
}

func TestShowErrorSwapsLoadingForErrorScreen(t *testing.T) {
	ui := newTestUI(t)

	ui.showError(errors.New("net::ERR_CONNECTION_TIMED_OUT"))

	if ui.loadingBox.Visible() {
		t.Error("Loading screen should be hidden on load error")
	}
	if !ui.errorBox.Visible() {
		t.Error("Error screen should be visible on load error")
	}
	if ui.errorLabel.Text != "net::ERR_CONNECTION_TIMED_OUT" {
		t.Errorf("Expected error detail in label, got %q", ui.errorLabel.Text)
	}
}

func TestLoadStateTracksTransitions(t *testing.T) {
	ui := newTestUI(t)

	if !ui.LoadState().IsLoading {
		t.Error("IsLoading should start true")
	}

	ui.setProgress(0.7)
	if ui.LoadState().Progress != 0.7 {
		t.Errorf("Expected progress 0.7, got %v", ui.LoadState().Progress)
	}

	ui.setProgress(3)
	if ui.LoadState().Progress != 1 {
		t.Errorf("Expected clamped progress 1, got %v", ui.LoadState().Progress)
	}

	ui.hideLoading()
	if ui.LoadState().IsLoading {
		t.Error("IsLoading should be false after the loading screen is dismissed")
	}

	ui.setDownloading(true)
	if !ui.LoadState().IsDownloading {
		t.Error("IsDownloading should be true while a download is in flight")
	}
	if !ui.downloadBox.Visible() {
		t.Error("Download overlay should be visible while a download is in flight")
	}

	ui.setDownloading(false)
	if ui.LoadState().IsDownloading {
		t.Error("IsDownloading should return to false when the download ends")
	}
	if ui.downloadBox.Visible() {
		t.Error("Download overlay should hide when the download ends")
	}
}

func TestHideLoadingRevealsStatusView(t *testing.T) {
	ui := newTestUI(t)

	ui.hideLoading()

	if ui.loadingBox.Visible() {
		t.Error("Loading screen should be hidden after the grace delay")
	}
	if !ui.statusBox.Visible() {
		t.Error("Status view should remain visible")
	}
}
