package platform

import "testing"

func TestDisplayPathDocumentProviderURI(t *testing.T) {
	uri := "content://com.android.externalstorage.documents/document/primary%3ADownload%2Freport.pdf"

	got := DisplayPath(uri)
	want := "Download/report.pdf"
	if got != want {
		t.Errorf("DisplayPath() = %q, want %q", got, want)
	}
}

func TestDisplayPathFileURI(t *testing.T) {
	uri := "file:///home/kiosk/Documents/export%20data.csv"

	got := DisplayPath(uri)
	want := "export data.csv"
	if got != want {
		t.Errorf("DisplayPath() = %q, want %q", got, want)
	}
}

func TestDisplayPathPlainSegment(t *testing.T) {
	got := DisplayPath("report.pdf")
	if got != "report.pdf" {
		t.Errorf("DisplayPath() = %q, want %q", got, "report.pdf")
	}
}

func TestDisplayPathBadEscapeFallsBack(t *testing.T) {
	// An invalid escape sequence keeps the raw segment rather than failing.
	got := DisplayPath("content://x/document/bad%zzsegment")
	if got != "bad%zzsegment" {
		t.Errorf("DisplayPath() = %q, want raw segment", got)
	}
}
