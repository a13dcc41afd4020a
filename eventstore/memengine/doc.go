// Package memengine is the in-memory implementation of the circulation journal.
//
// Events live in a slice guarded by a sync.RWMutex and get sequence numbers starting at 1.
// Query returns the events selected by an eventstore.Filter in sequence order together with
// the highest sequence number among them. Append takes the same Filter and that number and
// fails with eventstore.ErrConcurrencyConflict when a matching event was appended meanwhile.
//
// Nothing is persisted; the journal lives as long as the process.
package memengine
