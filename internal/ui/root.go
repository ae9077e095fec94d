package ui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/panelkit/panel-kiosk/internal/config"
	"github.com/panelkit/panel-kiosk/internal/download"
	"github.com/panelkit/panel-kiosk/internal/model"
	"github.com/panelkit/panel-kiosk/internal/platform"
)

// Navigator is the slice of the content host the shell drives
type Navigator interface {
	Reload() error
	Back() error
}

// RootUI is the shell window: load-progress surface, blocking download
// overlay, error screen, and outcome dialogs. The content itself renders in
// the engine's own kiosk window; this window is the status and control
// companion.
//
// The On* callbacks arrive on engine and orchestrator goroutines and marshal
// onto the UI thread with fyne.Do.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	navigator    Navigator
	openFile     func(model.PersistedFile) error

	appName    string
	appVersion string

	progressBar *ProgressBar
	statusBox   *fyne.Container
	loadingBox  *fyne.Container
	errorBox    *fyne.Container
	errorLabel  *widget.Label
	downloadBox *fyne.Container

	state model.LoadState

	graceMu    sync.Mutex
	graceTimer *time.Timer
}

// NewRootUI creates and initializes the shell window
func NewRootUI(window fyne.Window, app fyne.App, navigator Navigator, appName, appVersion string) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		navigator:    navigator,
		openFile:     platform.OpenPersistedFile,
		appName:      appName,
		appVersion:   appVersion,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// SetOpenHandler overrides how a saved file is opened
func (ui *RootUI) SetOpenHandler(open func(model.PersistedFile) error) {
	ui.openFile = open
}

// setupUI creates and arranges all shell components
func (ui *RootUI) setupUI() {
	ui.progressBar = NewProgressBar()

	versionLabel := widget.NewLabel(fmt.Sprintf("%s v%s", ui.appName, ui.appVersion))
	versionLabel.Alignment = fyne.TextAlignCenter

	// Logo, shown on the status view and the loading screen
	var logoImage fyne.CanvasObject
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		img.FillMode = canvas.ImageFillContain
		logoImage = img
	} else {
		title := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
		title.TextStyle = fyne.TextStyle{Bold: true}
		title.Alignment = fyne.TextAlignCenter
		logoImage = title
	}

	// Status view, visible once the page is up
	backBtn := widget.NewButton(IconBack+" "+ui.localization.GetText(KeyBack), ui.onBackClick)
	reloadBtn := widget.NewButton(IconReload+" "+ui.localization.GetText(KeyReload), ui.onReloadClick)
	ui.statusBox = container.NewCenter(container.NewVBox(
		logoImage,
		versionLabel,
		container.NewCenter(container.NewHBox(backBtn, reloadBtn)),
	))

	// Loading screen shown while the first load is in flight
	loadingSpinner := widget.NewProgressBarInfinite()
	loadingLabel := widget.NewLabel(ui.localization.GetText(KeyLoading))
	loadingLabel.Alignment = fyne.TextAlignCenter
	ui.loadingBox = container.NewCenter(container.NewVBox(
		widget.NewLabel(fmt.Sprintf("%s v%s", ui.appName, ui.appVersion)),
		loadingSpinner,
		loadingLabel,
	))

	// Error screen with a manual reload action
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Alignment = fyne.TextAlignCenter
	errorTitle := widget.NewLabel(IconError + " " + ui.localization.GetText(KeyPageLoadFailed))
	errorTitle.Alignment = fyne.TextAlignCenter
	ui.errorBox = container.NewCenter(container.NewVBox(
		errorTitle,
		ui.errorLabel,
		container.NewCenter(widget.NewButton(ui.localization.GetText(KeyReload), ui.onReloadClick)),
	))
	ui.errorBox.Hide()

	// Blocking overlay while a download is in flight
	downloadSpinner := widget.NewProgressBarInfinite()
	downloadLabel := widget.NewLabel(ui.localization.GetText(KeyDownloadingFile))
	downloadLabel.Alignment = fyne.TextAlignCenter
	ui.downloadBox = container.NewCenter(container.NewVBox(downloadSpinner, downloadLabel))
	ui.downloadBox.Hide()

	content := container.NewBorder(
		ui.progressBar, // top
		nil,            // bottom
		nil,            // left
		nil,            // right
		container.NewStack(ui.statusBox, ui.errorBox, ui.loadingBox, ui.downloadBox),
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(ShellMinWidth, ShellMinHeight))

	// First load is in flight from the moment the shell appears.
	ui.state.IsLoading = true
}

// OnLoadStart marks a page load beginning
func (ui *RootUI) OnLoadStart() {
	fyne.Do(ui.showLoading)
}

// OnLoadProgress updates the thin progress bar
func (ui *RootUI) OnLoadProgress(progress float64) {
	fyne.Do(func() {
		ui.setProgress(progress)
	})
}

// OnLoadEnd completes the progress bar and dismisses the loading screen
// after a short grace delay so fast loads do not flicker.
func (ui *RootUI) OnLoadEnd() {
	fyne.Do(func() {
		ui.setProgress(1)
	})

	ui.graceMu.Lock()
	if ui.graceTimer != nil {
		ui.graceTimer.Stop()
	}
	ui.graceTimer = time.AfterFunc(LoadEndGraceDelay, func() {
		fyne.Do(ui.hideLoading)
	})
	ui.graceMu.Unlock()
}

// OnLoadError swaps the loading screen for the error screen
func (ui *RootUI) OnLoadError(err error) {
	fyne.Do(func() {
		ui.showError(err)
	})
}

// OnDownloadStart implements download.StateListener
func (ui *RootUI) OnDownloadStart() {
	fyne.Do(func() {
		ui.setDownloading(true)
	})
}

// OnDownloadEnd implements download.StateListener
func (ui *RootUI) OnDownloadEnd(outcome model.DownloadOutcome) {
	fyne.Do(func() {
		ui.setDownloading(false)
	})
}

// LoadState reports the current user-visible activity snapshot. Read it from
// the UI thread only.
func (ui *RootUI) LoadState() model.LoadState {
	return ui.state
}

// HandleResult surfaces a terminal download result as a dialog
func (ui *RootUI) HandleResult(result download.Result) {
	fyne.Do(func() {
		ui.showResult(result)
	})
}

// showLoading resets the progress bar and raises the loading screen
func (ui *RootUI) showLoading() {
	ui.graceMu.Lock()
	if ui.graceTimer != nil {
		ui.graceTimer.Stop()
		ui.graceTimer = nil
	}
	ui.graceMu.Unlock()

	ui.setProgress(0)
	ui.state.IsLoading = true
	ui.errorBox.Hide()
	ui.loadingBox.Show()
}

// hideLoading dismisses the loading screen, revealing the status view
func (ui *RootUI) hideLoading() {
	ui.state.IsLoading = false
	ui.loadingBox.Hide()
}

func (ui *RootUI) showError(err error) {
	log.Printf("ui: page load failed: %v", err)
	ui.state.IsLoading = false
	ui.errorLabel.SetText(err.Error())
	ui.loadingBox.Hide()
	ui.errorBox.Show()
}

// setProgress moves the bar and mirrors the clamped value into the state
// snapshot
func (ui *RootUI) setProgress(progress float64) {
	ui.progressBar.SetProgress(progress)
	ui.state.Progress = ui.progressBar.Progress()
}

// setDownloading toggles the blocking overlay
func (ui *RootUI) setDownloading(downloading bool) {
	ui.state.IsDownloading = downloading
	if downloading {
		ui.downloadBox.Show()
	} else {
		ui.downloadBox.Hide()
	}
}

// showResult maps an outcome to its dialog
func (ui *RootUI) showResult(result download.Result) {
	switch result.Outcome {
	case model.OutcomeSaved:
		ui.showSavedDialog(result.File)
	case model.OutcomePermissionDenied:
		dialog.ShowInformation(
			ui.localization.GetText(KeyPermissionDenied),
			ui.localization.GetText(KeyPermissionMsg),
			ui.window)
	default:
		dialog.ShowInformation(
			ui.localization.GetText(KeyDownloadFailed),
			ui.localization.GetText(KeyDownloadFailedMsg),
			ui.window)
	}
}

// showSavedDialog offers to open the freshly saved file
func (ui *RootUI) showSavedDialog(file model.PersistedFile) {
	message := fmt.Sprintf(ui.localization.GetText(KeyFileSavedTo), platform.DisplayPath(file.URI))
	content := widget.NewLabel(message)
	content.Wrapping = fyne.TextWrapWord

	confirm := dialog.NewCustomConfirm(
		ui.localization.GetText(KeyDownloadComplete),
		ui.localization.GetText(KeyOpen),
		ui.localization.GetText(KeyOK),
		content,
		func(open bool) {
			if !open {
				return
			}
			go ui.openSavedFile(file)
		},
		ui.window)
	confirm.Show()
}

// openSavedFile hands the file to the platform opener off the UI thread
func (ui *RootUI) openSavedFile(file model.PersistedFile) {
	if err := ui.openFile(file); err != nil {
		log.Printf("ui: failed to open %s: %v", file.URI, err)
		fyne.Do(func() {
			dialog.ShowInformation(
				ui.localization.GetText(KeyUnableToOpen),
				file.Filename,
				ui.window)
		})
	}
}

func (ui *RootUI) onBackClick() {
	go func() {
		if err := ui.navigator.Back(); err != nil {
			log.Printf("ui: back failed: %v", err)
		}
	}()
}

// onReloadClick resets progress, shows the loading screen, and asks the
// engine to reload
func (ui *RootUI) onReloadClick() {
	ui.showLoading()
	go func() {
		if err := ui.navigator.Reload(); err != nil {
			log.Printf("ui: reload failed: %v", err)
			ui.OnLoadError(err)
		}
	}()
}
