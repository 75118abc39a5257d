// Package models defines domain entities for the employee analysis dashboard.
//
// The central type is [Employee], one parsed row of the remote CSV dataset.
// [Dataset] wraps the ordered row slice with source metadata and exposes the
// distinct-value helpers the sidebar selectors are built from. Numeric fields
// use NaN for missing values so aggregations can skip them the way the source
// data intends, instead of treating absence as zero.
package models
