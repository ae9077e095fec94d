package useragent

// Package useragent composes the outgoing identification string sent by the
// embedded browser surface.

import (
	"fmt"
	"strings"
)

// DeviceClass is a coarse classification of the host hardware
type DeviceClass string

const (
	ClassPhone   DeviceClass = "Phone"
	ClassTablet  DeviceClass = "Tablet"
	ClassDesktop DeviceClass = "Desktop"
	ClassTV      DeviceClass = "TV"
	ClassUnknown DeviceClass = "Unknown"
)

// Defaults applied when a field is absent
const (
	DefaultAppName    = "UnknownApp"
	DefaultAppVersion = "0.0.0"
	DefaultOSVersion  = "unknown"
	DefaultModel      = "unknown"
)

// Info holds the metadata the user-agent string is built from. Zero values
// are replaced with documented defaults, so Build never fails.
type Info struct {
	AppName    string
	AppVersion string
	OSFamily   string // e.g. "linux", "android"; capitalized in the output
	OSVersion  string
	Model      string
	Class      DeviceClass
	Emulator   bool
}

// Build returns the user-agent string in the format
// "{name}/{version} ({OS} {osVersion}; {model}; {deviceClass}; {Device|Emulator})".
func Build(info Info) string {
	name := info.AppName
	if name == "" {
		name = DefaultAppName
	}
	version := info.AppVersion
	if version == "" {
		version = DefaultAppVersion
	}
	osFamily := Capitalize(info.OSFamily)
	if osFamily == "" {
		osFamily = string(ClassUnknown)
	}
	osVersion := info.OSVersion
	if osVersion == "" {
		osVersion = DefaultOSVersion
	}
	model := info.Model
	if model == "" {
		model = DefaultModel
	}
	class := info.Class
	if class == "" {
		class = ClassUnknown
	}
	hardware := "Device"
	if info.Emulator {
		hardware = "Emulator"
	}

	return fmt.Sprintf("%s/%s (%s %s; %s; %s; %s)",
		name, version, osFamily, osVersion, model, class, hardware)
}

// Capitalize upper-cases the first character of s
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
