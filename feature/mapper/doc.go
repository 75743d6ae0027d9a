// Package mapper exposes the SKU mapping workflow over HTTP.
//
// It manages a registry of independent mapping sessions. Each session is
// created via POST /sessions, loaded with a master catalog and one or more
// sales batches, auto-mapped, manually patched, and finally reconciled into
// an inventory snapshot. Sessions never share state; operations within one
// session are serialized by a per-session lock.
//
// When snapshot storage is enabled, the mapping table is checkpointed to the
// object store after every manual assignment, so a crashed session can be
// reconstructed from its last exported CSV.
package mapper
