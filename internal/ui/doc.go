// Package ui is the Bubble Tea dashboard for Radar.
//
// The model reads state.Store snapshots on a tick and renders every view
// through the state objects in package radar:
//
//   - main: totals and a signal/noise bar per focus area
//   - dataTable: the trend table, driven by radar.ListViewState
//   - trendDetail: one record, loaded by stable id or route index
//   - voiceai, agentorch, durableruntime: a focus area with its top signals
//   - settings: effective configuration and the tail of the log file
//   - notFound: unknown routes
//
// A detail request that resolves to no record lands on the data table.
// The data table is reset to its defaults on every entry.
package ui
