package mimetype

import "testing"

func TestResolveKnownExtensions(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "application/pdf"},
		{"report.PDF", "application/pdf"},
		{"Data.CsV", "text/csv"},
		{"notes.txt", "text/plain"},
		{"sheet.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"photo.jpeg", "image/jpeg"},
		{"photo.JPG", "image/jpeg"},
		{"logo.svg", "image/svg+xml"},
		{"song.mp3", "audio/mpeg"},
		{"clip.MOV", "video/quicktime"},
		{"bundle.zip", "application/zip"},
		{"backup.tar.gz", "application/gzip"},
		{"archive.7z", "application/x-7z-compressed"},
		{"app.apk", "application/vnd.android.package-archive"},
		{"setup.exe", "application/x-msdownload"},
		{"image.dmg", "application/x-apple-diskimage"},
	}

	for _, c := range cases {
		got := Resolve(c.filename)
		if got != c.want {
			t.Errorf("Resolve(%q) = %q, want %q", c.filename, got, c.want)
		}
	}
}

func TestResolveUnknownOrMissingExtension(t *testing.T) {
	cases := []string{
		"binary",
		"weird.xyz123",
		"",
		"trailing.",
		"no_extension_at_all",
	}

	for _, filename := range cases {
		got := Resolve(filename)
		if got != DefaultType {
			t.Errorf("Resolve(%q) = %q, want %q", filename, got, DefaultType)
		}
	}
}

func TestExtensionOf(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "pdf"},
		{"Report.PDF", "pdf"},
		{"backup.tar.gz", "gz"},
		{"noext", ""},
		{"", ""},
		{"trailing.", ""},
		{".hidden", "hidden"},
	}

	for _, c := range cases {
		got := ExtensionOf(c.filename)
		if got != c.want {
			t.Errorf("ExtensionOf(%q) = %q, want %q", c.filename, got, c.want)
		}
	}
}
