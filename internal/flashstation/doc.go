// Package flashstation provides an HTTP client for Google's Flash Station
// factory image metadata service.
//
// # Overview
//
// The service has no documented public API. The portal page embeds everything
// a client needs: an API key inside the <body data-client-config> attribute,
// and a preloaded script bundle whose string literals reveal the product ids
// the portal itself would query. This package performs that scrape and then
// calls the builds endpoint directly.
//
// # Lookup flow
//
//  1. GET the portal page with a modern desktop browser User-Agent (the
//     portal serves an easier-to-scan ES2018 bundle to modern browsers).
//  2. Extract the 39-character API key from the client config attribute.
//  3. Download the script bundle referenced by <link as="script"> and harvest
//     its string literals.
//  4. Filter the literals through the candidate product rules: placeholder
//     substitution (${d}_fullmte), codename substrings (aosp_komodo_16k), and
//     optionally the generic GSI patterns (aosp_arm64_pubsign). The codename
//     itself is always queried.
//
// # Builds query
//
// FetchBuilds issues a single GET to the builds endpoint with the API key and
// one repeated product parameter per candidate, sorted for stable URLs. The
// decoded builds and the raw response body are both returned so callers can
// relay the service payload untouched.
//
// # Error Handling
//
// Failures map onto two error types, both supporting errors.As:
//
//   - *TransportError: network failure or non-2xx HTTP status
//   - *DecodeError: malformed JSON, or portal markup missing the scrape
//     anchors (body attribute, API key, script link)
//
// The client never retries; one invocation performs at most three requests
// (portal page, script bundle, builds endpoint).
//
// # Testing Considerations
//
// The Fetcher interface covers both operations and is implemented by *Client.
// Tests mock the remote side with httptest servers and assert on the query
// encoding, headers, and error taxonomy.
package flashstation
