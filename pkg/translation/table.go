package translation

// Table aggregates flattened translations from many languages into an
// insertion-ordered key -> (language code -> value) mapping. It is not safe
// for concurrent use; callers own synchronization.
type Table struct {
	values map[string]map[string]string
	dupSet map[string]struct{}
	keys   []string
	dupes  []string
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		values: make(map[string]map[string]string),
		dupSet: make(map[string]struct{}),
	}
}

// Set records a value for the (key, code) slot. Key order is fixed at first
// insertion. Writing a slot that already holds a value marks key as a
// duplicate (once, in first-detected order) and overwrites the value:
// the last write wins.
func (t *Table) Set(key, code, value string) {
	langs, ok := t.values[key]
	if !ok {
		langs = make(map[string]string)
		t.values[key] = langs
		t.keys = append(t.keys, key)
	}

	if _, exists := langs[code]; exists {
		if _, seen := t.dupSet[key]; !seen {
			t.dupSet[key] = struct{}{}
			t.dupes = append(t.dupes, key)
		}
	}
	langs[code] = value
}

// Get returns the value for the (key, code) slot.
func (t *Table) Get(key, code string) (string, bool) {
	v, ok := t.values[key][code]
	return v, ok
}

// Keys returns all keys in first-insertion order.
// The returned slice must not be modified.
func (t *Table) Keys() []string {
	return t.keys
}

// Languages returns the language values recorded for key.
// The returned map must not be modified.
func (t *Table) Languages(key string) map[string]string {
	return t.values[key]
}

// Duplicates returns keys whose (key, language) slot was written more than
// once, in first-detected order.
func (t *Table) Duplicates() []string {
	return t.dupes
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.keys)
}
