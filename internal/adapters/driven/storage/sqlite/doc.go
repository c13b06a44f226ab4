// Package sqlite provides SQLite-backed implementations of driven port
// interfaces using modernc.org/sqlite (pure Go, no cgo).
//
// The database lives at ~/.inklet/data/inklet.db by default and is opened
// in WAL mode. Schema changes go through numbered migration files embedded
// from the migrations subpackage.
package sqlite
