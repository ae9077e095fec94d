package model

// Package model defines domain data structures shared across the app: bridge
// messages from the embedded page, download requests and captured payloads,
// persisted-file records, and load-state snapshots. Structures are designed
// for direct use in the UI and explicit state transitions.
