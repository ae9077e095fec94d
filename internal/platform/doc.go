package platform

// Package platform contains OS/platform integration glue: persisting
// downloaded content through the consented-directory or app-documents
// storage backends, opening saved files via the registered handler or the
// native share flow, prettifying storage URIs for display, and probing
// device metadata for the user-agent string.
