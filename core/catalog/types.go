package catalog

// CanonicalItem is one row of the master catalog: a canonical stock code and
// its starting quantity.
type CanonicalItem struct {
	// MSKU is the canonical stock code. Expected unique, but uniqueness is
	// not enforced; reconciliation decrements every row sharing a code.
	MSKU string `json:"msku"`

	// Quantity is the on-hand quantity at load time. Non-negative at ingest.
	Quantity int `json:"quantity"`
}

// SalesRecord is one row of a sales batch: a seller-specific code and the
// quantity sold under it.
type SalesRecord struct {
	// SKU is the seller-specific code as it appears in the sales file.
	SKU string `json:"sku"`

	// Quantity is the quantity sold. May be negative for returns.
	Quantity int `json:"quantity"`
}

// InventoryItem is one row of an inventory snapshot: a catalog row extended
// with the quantity remaining after matched sales were subtracted.
type InventoryItem struct {
	MSKU     string `json:"msku"`
	Quantity int    `json:"quantity"`

	// Available is Quantity minus cumulative matched sales. Negative means
	// oversold; the value is reported as-is, never clamped.
	Available int `json:"available_quantity"`
}

// CleanCodes deduplicates the MSKU column of a catalog, dropping empty
// entries and preserving first-encountered order. The result is the candidate
// list handed to the fuzzy mapper.
func CleanCodes(items []CanonicalItem) []string {
	seen := make(map[string]struct{}, len(items))
	codes := make([]string, 0, len(items))
	for _, item := range items {
		if item.MSKU == "" {
			continue
		}
		if _, ok := seen[item.MSKU]; ok {
			continue
		}
		seen[item.MSKU] = struct{}{}
		codes = append(codes, item.MSKU)
	}
	return codes
}
