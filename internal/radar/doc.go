// Package radar holds the view state of the Radar dashboard: formatting of
// trend fields, the search/filter/sort state of the trend table, detail
// lookup, navigation between views and the signal/noise summary.
//
// Everything here is synchronous and free of I/O. Record slices passed in
// are treated as read-only; results are fresh slices.
//
// # Addressing records
//
// A detail view can be addressed by position (LoadByIndex) or by stable id
// (LoadByID). Positions shift when the record set is refreshed, so the UI
// navigates by id. Routes such as "trendDetail/3" carry the raw position,
// which LoadByIndexString resolves; a non-numeric one is not found.
//
// # Search case sensitivity
//
// Substring search is case-sensitive by default. NewListViewState and
// SetCaseSensitive make the choice explicit.
package radar
