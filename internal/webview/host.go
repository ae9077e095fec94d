package webview

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/panelkit/panel-kiosk/internal/capture"
)

// Load progress reported for page lifecycle milestones. The protocol has no
// fractional progress, so milestones are mapped to coarse fractions.
var lifecycleProgress = map[string]float64{
	"init":             0.1,
	"DOMContentLoaded": 0.7,
	"load":             1.0,
}

// Config describes the engine launch
type Config struct {
	Origin      string // the one fixed content origin
	UserAgent   string
	BrowserPath string // optional engine binary override
	Kiosk       bool
}

// Events carries the host surface's callbacks. All fields are optional.
// Callbacks fire on engine event goroutines; receivers marshal onto their
// own threads as needed.
type Events struct {
	OnLoadStart    func()
	OnLoadProgress func(progress float64)
	OnLoadEnd      func()
	OnLoadError    func(err error)

	// OnDownloadURL receives vetoed navigations and engine-native download
	// events. The URL is the sole input; no filename or MIME hint exists.
	OnDownloadURL func(url string)

	// OnBridgeMessage receives raw JSON text from the injected capture script
	OnBridgeMessage func(raw string)
}

// Host renders the fixed origin full screen and brokers the download bridge
type Host struct {
	cfg    Config
	events Events

	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

// New creates a content host; Start launches the engine
func New(cfg Config, events Events) *Host {
	return &Host{cfg: cfg, events: events}
}

// Start launches the engine, registers the capture script and the bridge
// binding, arms navigation interception, and navigates to the fixed origin.
// It returns once the initial navigation settles.
func (h *Host) Start() error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("autoplay-policy", "no-user-gesture-required"),
		chromedp.UserAgent(h.cfg.UserAgent),
	)
	if h.cfg.Kiosk {
		opts = append(opts, chromedp.Flag("kiosk", true))
	}
	if h.cfg.BrowserPath != "" {
		opts = append(opts, chromedp.ExecPath(h.cfg.BrowserPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(log.Printf))
	h.ctx = ctx
	h.cancel = cancel
	h.allocCancel = allocCancel

	chromedp.ListenTarget(ctx, h.handleTargetEvent)
	chromedp.ListenBrowser(ctx, h.handleBrowserEvent)

	err := chromedp.Run(ctx,
		runtime.AddBinding(capture.BindingName),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(capture.Script()).Do(ctx)
			return err
		}),
		page.SetLifecycleEventsEnabled(true),
		browser.SetDownloadBehavior(browser.SetDownloadBehaviorBehaviorDeny).
			WithEventsEnabled(true),
		fetch.Enable().WithPatterns([]*fetch.RequestPattern{{
			URLPattern:   "*",
			ResourceType: network.ResourceTypeDocument,
			RequestStage: fetch.RequestStageRequest,
		}}),
		chromedp.Navigate(h.cfg.Origin),
	)
	if err != nil {
		h.notifyLoadError(err)
		return fmt.Errorf("failed to start content host: %w", err)
	}
	return nil
}

// ErrNotStarted is returned for navigation requests before Start has
// launched the engine. The shell's buttons are live from the first frame,
// so a click can beat the engine coming up.
var ErrNotStarted = errors.New("content host not started")

// Reload reloads the current page
func (h *Host) Reload() error {
	if h.ctx == nil {
		return ErrNotStarted
	}
	if err := chromedp.Run(h.ctx, chromedp.Reload()); err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	return nil
}

// Back navigates one step back in the page history
func (h *Host) Back() error {
	if h.ctx == nil {
		return ErrNotStarted
	}
	if err := chromedp.Run(h.ctx, chromedp.NavigateBack()); err != nil {
		return fmt.Errorf("history back failed: %w", err)
	}
	return nil
}

// Done is closed when the engine exits (window closed, crash, Stop)
func (h *Host) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Stop shuts the engine down
func (h *Host) Stop() {
	if h.cancel != nil {
		h.cancel()
	}
	if h.allocCancel != nil {
		h.allocCancel()
	}
}

// handleTargetEvent dispatches page-level engine events
func (h *Host) handleTargetEvent(ev interface{}) {
	switch ev := ev.(type) {
	case *fetch.EventRequestPaused:
		// Veto/continue must not block the event loop.
		go h.onRequestPaused(ev)

	case *runtime.EventBindingCalled:
		if ev.Name == capture.BindingName && h.events.OnBridgeMessage != nil {
			h.events.OnBridgeMessage(ev.Payload)
		}

	case *page.EventFrameStartedLoading:
		if h.events.OnLoadStart != nil {
			h.events.OnLoadStart()
		}

	case *page.EventLifecycleEvent:
		if progress, ok := lifecycleProgress[ev.Name]; ok && h.events.OnLoadProgress != nil {
			h.events.OnLoadProgress(progress)
		}

	case *page.EventLoadEventFired:
		if h.events.OnLoadEnd != nil {
			h.events.OnLoadEnd()
		}
	}
}

// handleBrowserEvent dispatches browser-level engine events
func (h *Host) handleBrowserEvent(ev interface{}) {
	if ev, ok := ev.(*browser.EventDownloadWillBegin); ok {
		log.Printf("webview: engine download event for %s", ev.URL)
		if h.events.OnDownloadURL != nil {
			go h.events.OnDownloadURL(ev.URL)
		}
	}
}

// onRequestPaused applies the navigation-intercept predicate to a paused
// document request: downloads are vetoed and handed to the orchestrator,
// everything else continues unchanged.
func (h *Host) onRequestPaused(ev *fetch.EventRequestPaused) {
	c := chromedp.FromContext(h.ctx)
	ctx := cdp.WithExecutor(h.ctx, c.Target)

	if IsDownloadURL(ev.Request.URL) {
		log.Printf("webview: vetoing navigation to %s", ev.Request.URL)
		if err := fetch.FailRequest(ev.RequestID, network.ErrorReasonAborted).Do(ctx); err != nil {
			log.Printf("webview: failed to veto request: %v", err)
		}
		if h.events.OnDownloadURL != nil {
			h.events.OnDownloadURL(ev.Request.URL)
		}
		return
	}

	if err := fetch.ContinueRequest(ev.RequestID).Do(ctx); err != nil {
		log.Printf("webview: failed to continue request: %v", err)
	}
}

// notifyLoadError reports a page-level load failure. Load failures are never
// auto-retried; the shell renders an error screen with a manual reload.
func (h *Host) notifyLoadError(err error) {
	log.Printf("webview: load error: %v", err)
	if h.events.OnLoadError != nil {
		h.events.OnLoadError(err)
	}
}
