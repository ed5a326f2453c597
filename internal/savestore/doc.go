// Package savestore persists playback snapshots in SQLite, keyed by slot
// name.
//
// Payloads are opaque to the store; the playback runtime owns the snapshot
// encoding. Writes upsert whole records so a save is always all-or-nothing,
// and busy retries keep concurrent CLI invocations from tripping over WAL
// locks.
package savestore
