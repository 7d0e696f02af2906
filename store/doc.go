// Package store persists track sets in SQLite.
//
// A saved set is a session identified by UUID. Sessions are written in a single
// transaction and are immutable afterwards; deleting a session cascades to its
// tracks, observations and attributes.
package store
