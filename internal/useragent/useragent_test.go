package useragent

import "testing"

func TestBuildFullInfo(t *testing.T) {
	info := Info{
		AppName:    "PanelKiosk",
		AppVersion: "1.2.3",
		OSFamily:   "android",
		OSVersion:  "14",
		Model:      "Pixel 8",
		Class:      ClassPhone,
		Emulator:   false,
	}

	got := Build(info)
	want := "PanelKiosk/1.2.3 (Android 14; Pixel 8; Phone; Device)"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBuildAppliesDefaults(t *testing.T) {
	got := Build(Info{})
	want := "UnknownApp/0.0.0 (Unknown unknown; unknown; Unknown; Device)"
	if got != want {
		t.Errorf("Build(zero) = %q, want %q", got, want)
	}
}

func TestBuildEmulatorFlag(t *testing.T) {
	info := Info{
		AppName:    "PanelKiosk",
		AppVersion: "0.1.0",
		OSFamily:   "linux",
		OSVersion:  "6.8",
		Model:      "qemu",
		Class:      ClassDesktop,
		Emulator:   true,
	}

	got := Build(info)
	want := "PanelKiosk/0.1.0 (Linux 6.8; qemu; Desktop; Emulator)"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestCapitalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"android", "Android"},
		{"ios", "Ios"},
		{"Linux", "Linux"},
		{"", ""},
	}

	for _, c := range cases {
		if got := Capitalize(c.in); got != c.want {
			t.Errorf("Capitalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
