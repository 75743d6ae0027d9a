package mapping

// Pair is one resolved SKU → MSKU association.
type Pair struct {
	SKU  string `json:"sku"`
	MSKU string `json:"msku"`
}

// Table maps seller SKUs to canonical MSKUs. Each SKU appears once; the order
// in which SKUs were first inserted is preserved so exports are reproducible.
type Table struct {
	order   []string
	entries map[string]string
}

// NewTable returns an empty mapping table.
func NewTable() *Table {
	return &Table{entries: make(map[string]string)}
}

// Get returns the MSKU mapped to sku, if any.
func (t *Table) Get(sku string) (string, bool) {
	msku, ok := t.entries[sku]
	return msku, ok
}

// Has reports whether sku already has a mapping.
func (t *Table) Has(sku string) bool {
	_, ok := t.entries[sku]
	return ok
}

// Set inserts or overwrites the mapping for sku. An overwrite keeps the
// SKU's original position in the export order.
func (t *Table) Set(sku, msku string) {
	if _, ok := t.entries[sku]; !ok {
		t.order = append(t.order, sku)
	}
	t.entries[sku] = msku
}

// Len returns the number of mapped SKUs.
func (t *Table) Len() int {
	return len(t.entries)
}

// Pairs returns all associations in insertion order.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t.order))
	for _, sku := range t.order {
		pairs = append(pairs, Pair{SKU: sku, MSKU: t.entries[sku]})
	}
	return pairs
}

// Queue holds the SKUs pending manual resolution. It is a set: adding a code
// twice is a no-op, and order of first insertion is preserved for display.
type Queue struct {
	order   []string
	members map[string]struct{}
}

// NewQueue returns an empty unmapped queue.
func NewQueue() *Queue {
	return &Queue{members: make(map[string]struct{})}
}

// Add places sku in the queue if it is not already present.
func (q *Queue) Add(sku string) {
	if _, ok := q.members[sku]; ok {
		return
	}
	q.members[sku] = struct{}{}
	q.order = append(q.order, sku)
}

// Remove takes sku out of the queue. Removing an absent code is a no-op and
// reports false.
func (q *Queue) Remove(sku string) bool {
	if _, ok := q.members[sku]; !ok {
		return false
	}
	delete(q.members, sku)
	for i, code := range q.order {
		if code == sku {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether sku is pending manual resolution.
func (q *Queue) Has(sku string) bool {
	_, ok := q.members[sku]
	return ok
}

// Len returns the number of pending SKUs.
func (q *Queue) Len() int {
	return len(q.members)
}

// Codes returns the pending SKUs in first-insertion order.
func (q *Queue) Codes() []string {
	codes := make([]string, len(q.order))
	copy(codes, q.order)
	return codes
}
