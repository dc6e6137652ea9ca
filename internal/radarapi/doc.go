// Package radarapi provides an HTTP client for the Radar backend.
//
// # Endpoints
//
// The client is read-only and covers four endpoints:
//
//   - GET /: health check ({"status":"healthy","service":...})
//   - GET /api/radar[?date=YYYY-MM-DD]: trends of one radar date, latest by default
//   - GET /items?skip&limit: all stored trends with a total count
//   - GET /items/{id}: a single stored trend
//
// # Payload quirks
//
// The radar endpoint returns evidence lists as JSON arrays and the
// architectural verdict as a bool. The items endpoints return the same
// lists as JSON-encoded strings and the verdict as a number. StringList and
// Verdict accept both forms.
//
// # Errors
//
// Transport failures are wrapped with the failing step ("execute request",
// "decode response"). A 4xx/5xx answer yields a *StatusError carrying the
// path, code and the backend's "detail" message when present; IsNotFound
// matches 404s.
//
// # Conversion
//
// Records turns transport trends into radar.TrendRecord values. A trend the
// backend sent without an id gets one hashed from its radar date, focus area
// and tool name, which survives reordering between polls.
package radarapi
