package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/panelkit/panel-kiosk/internal/mimetype"
	"github.com/panelkit/panel-kiosk/internal/model"
)

// Command constants
const (
	OpenCommand        = "open"
	XDGOpenCommand     = "xdg-open"
	CmdCommand         = "cmd"
	StartCommand       = "start"
	WindowsCmdFlag     = "/c"
	ActivityManagerCmd = "am"
)

// Android intent actions
const (
	IntentActionView = "android.intent.action.VIEW"
	IntentActionSend = "android.intent.action.SEND"
	IntentExtraPath  = "android.intent.extra.STREAM"
)

// ErrNoHandler is returned when no installed application can open the file
var ErrNoHandler = errors.New("no application registered for this file type")

// OpenPersistedFile hands a saved file to the platform viewer. On Android it
// sends an open intent scoped to the file's inferred type, falling back to
// the share flow; elsewhere it defers to the platform opener, which resolves
// the handler from the file itself.
func OpenPersistedFile(file model.PersistedFile) error {
	mime := file.MimeType
	if mime == "" {
		mime = mimetype.Resolve(file.Filename)
	}

	switch runtime.GOOS {
	case OSAndroid:
		return openFileAndroid(file.URI, mime)
	case OSDarwin, OSIOS:
		return openFileApple(uriToPath(file.URI))
	case OSWindows:
		return openFileWindows(uriToPath(file.URI))
	case OSLinux:
		return openFileLinux(uriToPath(file.URI))
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileAndroid opens the file via an intent to the registered handler,
// then falls back to a share intent before giving up.
func openFileAndroid(uri, mime string) error {
	cmd := exec.Command(ActivityManagerCmd, "start", "-a", IntentActionView, "-d", uri, "-t", mime)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Without an explicit type the system may still find a handler.
	cmd = exec.Command(ActivityManagerCmd, "start", "-a", IntentActionView, "-d", uri)
	if err := cmd.Run(); err == nil {
		return nil
	}

	cmd = exec.Command(ActivityManagerCmd, "start", "-a", IntentActionSend, "-t", mime, "--eu", IntentExtraPath, uri)
	if err := cmd.Run(); err == nil {
		return nil
	}

	return fmt.Errorf("failed to open %s: %w", uri, ErrNoHandler)
}

// openFileApple opens file with the default app. `open` takes no type hint;
// Launch Services resolves the handler from the file itself.
func openFileApple(path string) error {
	cmd := exec.Command(OpenCommand, path)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, ErrNoHandler)
	}
	return nil
}

// openFileWindows opens file with the default app on Windows
func openFileWindows(path string) error {
	cmd := exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", path)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, ErrNoHandler)
	}
	return nil
}

// openFileLinux opens file with the default app on Linux
func openFileLinux(path string) error {
	cmd := exec.Command(XDGOpenCommand, path)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, ErrNoHandler)
	}
	return nil
}

// uriToPath strips a file:// scheme so exec-based openers get a plain path
func uriToPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
