// Package logtail reads the tail of the Radar log file for the Settings view.
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded by
// the number of lines requested rather than the size of the file. A missing
// file yields no lines and no error.
//
// Parse splits a line produced by slog's text handler into time, level,
// message and remaining attributes so the UI can colour each part. Lines
// that are not key=value records are returned verbatim as the message.
package logtail
