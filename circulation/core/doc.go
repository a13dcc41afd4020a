// Package core contains the domain of the library circulation engine:
// books, patrons, loans, the lending policy, and the domain events the engine records.
//
// Everything in here is pure. Nothing reads the wall clock directly; callers pass
// "today" (or a Clock) so that loan status derivation stays deterministic.
//
// All domain events implement the DomainEvent interface with EventType(),
// HasOccurredAt() and IsErrorEvent() methods for journal integration.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
