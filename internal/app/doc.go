// Package app is the composition root of Radar.
//
// Run loads configuration, opens the log file, builds the backend client,
// starts the background Poller and hands a shared state.Store to the TUI.
// The poller fetches health and the radar payload concurrently on every
// cycle and doubles its wait after each failure, capped at 30 seconds.
// The UI's manual refresh calls Poller.Trigger, which never blocks.
//
// Errors split into two groups:
//
//   - fatal, returned from Run: invalid configuration, an unusable log
//     directory, a malformed API URL
//   - recoverable, logged and stored in the snapshot: any poll failure
//
// FetchRecords serves one-shot callers such as the list command, reading
// either the radar endpoint or every page of /items.
package app
