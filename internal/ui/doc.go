// Package ui implements the interactive dashboard using bubbletea's Elm architecture.
//
// The TUI is a single-page layout: a sidebar of filter controls next to a
// main pane with three views:
//  1. [DataView] : the filtered employee table
//  2. [ChartsView] : the chart pages, browsable with ←/→
//  3. [RawDataView] : the unfiltered dataset
//
// Every interaction recomputes the filtered rows and derived charts from the
// current filter state; no incremental state survives between render passes.
//
// Pressing "a" on the charts view runs the growing-bars animation: the age
// histogram sweeps first, then the unit frequency chart. Each animation frame
// arrives as a tick message whose delay comes from the sweep's step policy,
// so the stepping logic itself stays clock-free and testable.
package ui
