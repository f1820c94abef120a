// Package app wires configuration, preferences, the flashstation client, and
// the output layers into one invocation.
//
// Run resolves the device codename (flag first, then the prefs default) and
// fails with a UsageError before any network call when neither is set. It
// then scrapes the portal, fetches builds, and emits either the raw service
// payload, the per-product summary, or an interactive browser over the
// summary.
//
// The Fetcher and Stdout fields on Options exist so tests can run the whole
// pipeline against an in-memory double without a network or a terminal.
package app
