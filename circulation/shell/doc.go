// Package shell is the imperative shell around the circulation core.
//
// It translates between domain events and the storable events of the journal, builds event
// metadata, and carries the observability helpers shared by the command handlers.
package shell
