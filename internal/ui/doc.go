package ui

// Package ui contains the Fyne-based shell for the kiosk. It renders the
// loading screen, the thin load-progress bar, the blocking download overlay,
// the error screen, and the outcome dialogs, and forwards navigation actions
// to the content host. All UI strings are localized via Localization.
