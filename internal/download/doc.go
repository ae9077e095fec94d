package download

// Package download implements the host-side download orchestrator. It
// receives download requests from the content host (vetoed navigations,
// engine download events, bridge messages) and captured payloads from the
// injected script, resolves filename and MIME type, fetches or decodes the
// bytes, persists them through platform storage, and reports one terminal
// outcome per attempt.
