// Package state shares the latest radar poll result between the background
// poller and the UI.
//
// The poller is the single writer: it calls Store.Update with either a
// Payload or an error. The UI reads through Store.Snapshot, which returns a
// deep copy so rendering never races with polling.
//
// A failed update keeps the previous records and radar date visible and only
// records the error and increments ConsecutiveFailures. Two or more
// consecutive failures mark the snapshot offline.
package state
