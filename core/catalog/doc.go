// Package catalog defines the typed records for the master catalog and sales
// data, and the CSV ingestion/export boundary around them.
//
// Rows are validated at the ingestion boundary: a file missing a required
// column or carrying an unparseable quantity is rejected with an IngestError
// before any in-memory state is touched, so a failed load never leaves a
// partially replaced catalog behind.
//
// # Files
//
//   - Master file: requires the MSKU and Quantity columns. Quantity must be a
//     non-negative integer.
//   - Sales file: requires the SKU and Quantity columns. Quantity is an
//     integer (returns and corrections may be negative).
//   - Inventory export: the master columns plus Available Quantity.
//
// # Usage
//
//	items, err := catalog.ReadMaster(file, "master.csv")
//	var ingestErr *catalog.IngestError
//	if errors.As(err, &ingestErr) {
//	    // surface to the caller; prior state is untouched
//	}
package catalog
