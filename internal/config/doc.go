// Package config handles loading flashview's configuration.
//
// # Resolution order
//
//  1. Built-in defaults (the public portal and builds endpoints).
//  2. ~/.config/flashview/config.toml, or the path given on the command line.
//     A missing file is not an error; defaults apply.
//  3. FLASHVIEW_* environment variables, which always win. A .env file in the
//     working directory is loaded first when present.
//
// # Fields
//
//   - portal_url / FLASHVIEW_PORTAL_URL: the flash portal to scrape
//   - builds_url / FLASHVIEW_BUILDS_URL: the metadata endpoint
//   - user_agent / FLASHVIEW_USER_AGENT: browser UA sent to the portal
//   - timeout_seconds / FLASHVIEW_TIMEOUT_SECONDS: HTTP timeout
//
// Overriding the endpoints is mainly useful for testing against local mock
// servers; the defaults point at Google's production service.
//
// The package is read-only and stateless: configuration is loaded once at
// startup and returned as a value.
package config
