// Package plan builds minimal PxWeb selection queries from dataset
// dimension metadata.
//
// A statistical dataset exposes far more data than one dashboard series
// needs: every region, every year, every measured concept, plus extra
// classification axes. The planner narrows the fetch to the relevant
// slice before any data moves: all allow-listed regions, the candidate
// years, exactly one resolved metric code, and the first (default) value
// of every other axis.
//
// A plan whose metric cannot be resolved is never submitted; the caller
// degrades to an empty series instead of querying with an ambiguous
// metric.
package plan
