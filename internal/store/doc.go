// Package store provides durable storage for fetch runs and their
// aggregated series.
//
// The archive exists so the dashboard can be served and inspected without
// the network: each fetch run is recorded with a time-ordered run ID and
// its sorted observation rows, per series. It is an archive of engine
// output, not an HTTP response cache; raw cubes are never stored.
//
// SQLite with WAL mode; a single-writer connection pool avoids
// SQLITE_BUSY under concurrent reads.
package store
