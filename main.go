package main

import (
	"fmt"
	"log"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/panelkit/panel-kiosk/internal/bridge"
	"github.com/panelkit/panel-kiosk/internal/config"
	"github.com/panelkit/panel-kiosk/internal/download"
	"github.com/panelkit/panel-kiosk/internal/model"
	"github.com/panelkit/panel-kiosk/internal/platform"
	"github.com/panelkit/panel-kiosk/internal/ui"
	"github.com/panelkit/panel-kiosk/internal/useragent"
	"github.com/panelkit/panel-kiosk/internal/webview"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.panelkit.panel-kiosk"
	AppName = "Panel Kiosk"

	appDirName = "panel-kiosk"
)

func main() {
	// Log version information
	fmt.Printf("Panel Kiosk v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply kiosk theme
	myApp.Settings().SetTheme(ui.NewKioskTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	// Initialize services
	settings := config.NewSettings(myApp)

	store := newStorage(settings, myWindow)
	userAgent := useragent.Build(useragent.Info{
		AppName:    AppName,
		AppVersion: version,
		OSFamily:   runtime.GOOS,
		OSVersion:  platform.OSVersion(),
		Model:      platform.DeviceModel(),
		Class:      platform.DetectDeviceClass(),
		Emulator:   platform.IsEmulator(),
	})
	log.Printf("user agent: %s", userAgent)

	fetcher := download.NewHTTPFetcher(userAgent)
	downloadSvc := download.NewService(store, fetcher, platform.AppCacheDir(appDirName))

	// Bridge messages go through a single ordered queue: a blob_data handled
	// before its blob_processing would unbalance the busy-state accounting.
	dispatcher := bridge.NewDispatcher(&bridgeHandler{svc: downloadSvc})
	bridgeQueue := bridge.NewQueue(dispatcher, bridge.DefaultQueueCapacity)

	// Create content host. Its events fire only after Start, by which time
	// rootUI is assigned.
	var rootUI *ui.RootUI
	host := webview.New(webview.Config{
		Origin:      config.ContentOrigin,
		UserAgent:   userAgent,
		BrowserPath: settings.GetBrowserPath(),
		Kiosk:       settings.GetKioskMode(),
	}, webview.Events{
		OnLoadStart:    func() { rootUI.OnLoadStart() },
		OnLoadProgress: func(progress float64) { rootUI.OnLoadProgress(progress) },
		OnLoadEnd:      func() { rootUI.OnLoadEnd() },
		OnLoadError:    func(err error) { rootUI.OnLoadError(err) },
		OnDownloadURL: func(url string) {
			go downloadSvc.HandleRequest(model.DownloadRequest{SourceURL: url})
		},
		OnBridgeMessage: bridgeQueue.Enqueue,
	})

	// Create and setup UI
	rootUI = ui.NewRootUI(myWindow, myApp, host, AppName, version)
	downloadSvc.SetStateListener(rootUI)
	downloadSvc.SetResultCallback(rootUI.HandleResult)

	go func() {
		if err := host.Start(); err != nil {
			log.Printf("content host failed to start: %v", err)
			return
		}
		// Closing the engine window closes the shell too.
		<-host.Done()
		fyne.Do(myApp.Quit)
	}()

	// Show and run
	myWindow.ShowAndRun()
	host.Stop()
}

// newStorage picks the storage backend: the consent-requiring directory on
// Android, an app-private documents directory elsewhere.
func newStorage(settings *config.Settings, window fyne.Window) download.Storage {
	if platform.IsAndroid() {
		return platform.NewConsentedDirStorage(settings, consentPrompt(window))
	}

	docsDir, err := platform.AppDocumentsDir(appDirName)
	if err != nil {
		log.Printf("falling back to cache dir for documents: %v", err)
		docsDir = platform.AppCacheDir(appDirName)
	}
	return platform.NewDocumentsStorage(docsDir)
}

// consentPrompt asks the user for a destination directory via a folder
// picker. It blocks the calling download goroutine until the user answers;
// a dismissed picker reports a nil grant.
func consentPrompt(window fyne.Window) platform.ConsentFunc {
	return func() (fyne.ListableURI, error) {
		picked := make(chan fyne.ListableURI, 1)
		failed := make(chan error, 1)

		fyne.Do(func() {
			dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
				if err != nil {
					failed <- err
					return
				}
				picked <- dir
			}, window)
		})

		select {
		case dir := <-picked:
			return dir, nil
		case err := <-failed:
			return nil, err
		}
	}
}

// bridgeHandler routes decoded bridge messages into the download service.
// Capture accounting runs synchronously on the queue's consumer so slots
// pair up in arrival order; only the fetch and persist work is offloaded.
type bridgeHandler struct {
	svc *download.Service
}

func (h *bridgeHandler) HandleDownload(req model.DownloadRequest) {
	go h.svc.HandleRequest(req)
}

func (h *bridgeHandler) HandleBlobProcessing() {
	h.svc.NotifyProcessing()
}

func (h *bridgeHandler) HandleBlobData(payload model.CapturedPayload) {
	h.svc.AcceptPayload(payload)
}

func (h *bridgeHandler) HandleBlobError(message string) {
	h.svc.NotifyCaptureError(message)
}
