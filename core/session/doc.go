// Package session bundles the mutable state of one mapping session into an
// explicit context object: the loaded catalog, the sales batches, the mapping
// table, and the unmapped queue.
//
// There are no process-wide singletons. Every consumer (the HTTP feature, the
// CLI commands) creates its own Session and passes it to each operation, so
// concurrent sessions never share state. A single Session is not safe for
// concurrent use; callers serving one session from multiple goroutines must
// serialize access themselves.
package session
