package webview

// Package webview hosts the embedded content surface: a Chromium instance
// driven over the DevTools protocol. It owns navigation, load lifecycle
// events, the navigation-intercept download predicate, engine-native
// download events, and the bridge channel carrying messages from the
// injected capture script.
