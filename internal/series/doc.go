// Package series defines the observation row contract and the aggregation
// step that turns extracted rows into a sorted, tabular series.
//
// A Row is one (year, region, value) observation. Rows arrive from cube
// extraction in arbitrary order, possibly with several rows per (year,
// region) key when a dataset encodes a concept as additive components.
// Aggregate sums duplicates and imposes the ordering every downstream
// consumer relies on: ascending by year, then by region name.
//
// Absence of data is expressed by absence of rows, never by zero-valued
// rows. An empty input aggregates to an empty, non-nil series.
package series
