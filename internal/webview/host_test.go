package webview

import (
	"errors"
	"testing"
)

func TestNavigationBeforeStartReturnsError(t *testing.T) {
	// Shell buttons are clickable while the engine is still launching.
	h := New(Config{Origin: "http://192.168.4.1"}, Events{})

	if err := h.Reload(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Reload before Start: expected ErrNotStarted, got %v", err)
	}
	if err := h.Back(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Back before Start: expected ErrNotStarted, got %v", err)
	}
}
