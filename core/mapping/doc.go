// Package mapping implements SKU to MSKU resolution: format validation,
// fuzzy auto-mapping against the master catalog, and the manual fallback for
// codes the automatic pass could not confidently place.
//
// # State
//
// Two structures carry the resolution state for a session:
//
//   - Table: SKU → MSKU associations, unique per SKU, insertion order
//     preserved for export.
//   - Queue: the set of SKUs pending manual resolution.
//
// An observed SKU lives in exactly one of the two at any time. MapCodes moves
// codes into one or the other; Assign is the only path that moves a code from
// the queue into the table bypassing the similarity threshold.
//
// # Auto-mapping
//
// MapCodes scores each observed code against every catalog code using a
// match.Scorer and commits the best candidate when its score strictly exceeds
// the threshold (default 80). Ties go to the first-encountered catalog code.
// Codes failing the format check never reach the scorer.
package mapping
