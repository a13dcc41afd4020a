// Package eventstore provides the types of the circulation journal: an append-only log of
// everything the lending engine decided.
//
// Events are selected with a Filter built by the fluent FilterBuilder:
//   - Event types
//   - Top-level JSON payload predicates (e.g. ISBN, PatronID, LoanID)
//
// Appends are guarded optimistically: the writer passes the Filter it decided on and the max
// sequence number it saw, and the append fails with ErrConcurrencyConflict if that moved.
//
// Common usage pattern:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(core.LoanIssuedEventType, core.LoanReturnedEventType).
//		AndAnyPredicateOf(eventstore.P("PatronID", patronID)).
//		Finalize()
//
//	events, maxSeq, err := journal.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	event, err := eventstore.BuildStorableEvent(eventType, occurredAt, payload, metadata)
//	err = journal.Append(ctx, filter, maxSeq, event)
//
// The in-memory implementation lives in package memengine.
package eventstore
