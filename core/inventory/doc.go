// Package inventory recomputes on-hand stock from the master catalog, the
// observed sales batches, and the SKU → MSKU mapping table.
//
// Reconcile is a pure function over a copy of the catalog: it initializes
// every item's available quantity to its catalog quantity, then walks the
// sales batches in order, subtracting each mapped sale from the matching
// catalog row(s). Sales whose SKU has no mapping are skipped silently (the
// mapper already reported them); sales mapped to an MSKU absent from the
// catalog are skipped with a warning. Available quantities may go negative
// and are reported as-is.
//
// The result is a Report: the inventory snapshot plus the warnings raised
// during the pass and aggregate counters for the audit trail.
package inventory
