package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/panelkit/panel-kiosk/internal/useragent"
)

// Android property keys probed via getprop
const (
	PropOSVersion   = "ro.build.version.release"
	PropDeviceModel = "ro.product.model"
	PropIsEmulator  = "ro.kernel.qemu"
)

// Model-name fragments that identify an emulator build
var emulatorModelHints = []string{"emulator", "sdk", "generic"}

// IsAndroid reports whether the process runs in an Android environment.
// Fyne Android apps run as libdist.so, so GOOS alone is not enough.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// DetectDeviceClass maps the runtime platform to the coarse device class
// used in the user-agent string. Unrecognized platforms report Unknown.
func DetectDeviceClass() useragent.DeviceClass {
	if IsAndroid() {
		return useragent.ClassPhone
	}
	switch runtime.GOOS {
	case OSIOS:
		return useragent.ClassPhone
	case OSDarwin, OSWindows, OSLinux:
		return useragent.ClassDesktop
	default:
		return useragent.ClassUnknown
	}
}

// OSVersion returns the host OS version string, or "unknown"
func OSVersion() string {
	if IsAndroid() {
		if v := getprop(PropOSVersion); v != "" {
			return v
		}
		return useragent.DefaultOSVersion
	}

	switch runtime.GOOS {
	case OSDarwin:
		if out, err := exec.Command("sw_vers", "-productVersion").Output(); err == nil {
			return strings.TrimSpace(string(out))
		}
	case OSLinux:
		if out, err := exec.Command("uname", "-r").Output(); err == nil {
			return strings.TrimSpace(string(out))
		}
	case OSWindows:
		if out, err := exec.Command(CmdCommand, WindowsCmdFlag, "ver").Output(); err == nil {
			return strings.TrimSpace(string(out))
		}
	}
	return useragent.DefaultOSVersion
}

// DeviceModel returns the hardware model string, or "unknown"
func DeviceModel() string {
	if IsAndroid() {
		if m := getprop(PropDeviceModel); m != "" {
			return m
		}
		return useragent.DefaultModel
	}

	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return useragent.DefaultModel
}

// IsEmulator reports whether the app runs on an emulator rather than
// physical hardware. Desktop platforms always count as physical devices.
func IsEmulator() bool {
	if !IsAndroid() {
		return false
	}
	if getprop(PropIsEmulator) == "1" {
		return true
	}
	model := strings.ToLower(getprop(PropDeviceModel))
	for _, hint := range emulatorModelHints {
		if strings.Contains(model, hint) {
			return true
		}
	}
	return false
}

// getprop reads one Android system property, empty string on failure
func getprop(key string) string {
	out, err := exec.Command("getprop", key).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
