package platform

import (
	"runtime"
	"testing"

	"github.com/panelkit/panel-kiosk/internal/useragent"
)

func TestDetectDeviceClassIsNeverEmpty(t *testing.T) {
	class := DetectDeviceClass()
	if class == "" {
		t.Error("Device class must never be empty")
	}
}

func TestDetectDeviceClassDesktopPlatforms(t *testing.T) {
	if IsAndroid() {
		t.Skip("running under Android environment")
	}

	switch runtime.GOOS {
	case OSDarwin, OSWindows, OSLinux:
		if class := DetectDeviceClass(); class != useragent.ClassDesktop {
			t.Errorf("Expected Desktop on %s, got %s", runtime.GOOS, class)
		}
	}
}

func TestOSVersionNeverEmpty(t *testing.T) {
	if v := OSVersion(); v == "" {
		t.Error("OS version must fall back to a default, never empty")
	}
}

func TestDeviceModelNeverEmpty(t *testing.T) {
	if m := DeviceModel(); m == "" {
		t.Error("Device model must fall back to a default, never empty")
	}
}
