// Package storage declares persistence contracts for web-owned state.
//
// The web service keeps only sessions and derived cache payloads. Every
// business record lives in the remote Golear API.
package storage
