// Package statfin fetches statistical series from a PxWeb table endpoint
// and drives the plan/extract/aggregate pipeline for the configured
// dashboard series.
//
// One series fetch is: GET the table metadata, plan a minimal selection
// query, POST it, decode the JSON-stat cube, extract and aggregate. The
// four standard series have no data dependency on one another and are
// fetched concurrently, each as an independent unit of work with its own
// timeout; a failure in one never affects the others.
//
// Error discipline at the service boundary: a fetch failure (network,
// HTTP status, timeout) degrades to an empty series and is logged, never
// propagated to the dashboard. A structurally malformed cube is a
// contract violation and surfaces as a cube.DecodeError. An unresolvable
// concept is the planner's defined "not found" outcome and also degrades
// to an empty series. An empty series is never conflated with zero-valued
// data.
package statfin
