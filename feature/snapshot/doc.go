// Package snapshot exposes the durable CSV snapshots held in object storage.
//
// The mapper feature checkpoints mapping tables (and inventory exports) into
// the snapshot bucket; this feature lets operators list those objects and
// download any of them for inspection or re-import. The feature is only
// enabled when snapshot storage is configured.
package snapshot
