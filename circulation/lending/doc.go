// Package lending is the lending policy engine of the library: the one entry point that owns
// the catalog, the directory, the loan ledger and the journal, and applies the lending rules.
//
// An Engine is a plain context object; there are no package-level collections. It is meant to
// be driven by a single caller at a time.
package lending
