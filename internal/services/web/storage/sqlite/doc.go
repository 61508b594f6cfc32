// Package sqlite provides the web persistence adapter backed by SQLite.
//
// The store holds browser sessions and derived cache payloads that can be
// rebuilt from upstream APIs.
package sqlite
