// Package session is the single source of truth for who is logged in.
//
// A Store owns the credential (an opaque bearer token) and a snapshot of the
// user's profile. Every write replaces the in-memory state and then persists
// the whole snapshot as one named blob, so a fresh Store over the same
// Persister restores the same state after a restart.
//
// Reads and writes never fail for the caller. Persistence errors are logged
// and the in-memory state stays authoritative for the running process.
//
// A Store is safe for concurrent use. Writes are serialised, and the
// snapshot persisted last is always the one written last.
package session
