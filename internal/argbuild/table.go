package argbuild

import "strings"

// Table is an insertion-ordered mapping from lookup keys to descriptors.
// Compiled output preserves insertion order. Key comparison is
// case-sensitive by default; NewFoldedTable builds a case-insensitive
// variant whose property resolution folds case as well.
type Table struct {
	fold  bool
	keys  []string
	byKey map[string]Descriptor
}

// NewTable returns an empty table with case-sensitive key comparison.
func NewTable() *Table {
	return &Table{byKey: make(map[string]Descriptor)}
}

// NewFoldedTable returns an empty table with case-insensitive key
// comparison and case-insensitive property-path resolution.
func NewFoldedTable() *Table {
	return &Table{fold: true, byKey: make(map[string]Descriptor)}
}

// Add inserts or replaces the descriptor stored under key. Replacing an
// existing key keeps its original position. Returns the table for chaining.
func (t *Table) Add(key string, desc Descriptor) *Table {
	stored, ok := t.findKey(key)
	if !ok {
		t.keys = append(t.keys, key)
		stored = key
	}
	t.byKey[stored] = desc
	return t
}

// Lookup returns the descriptor stored under key.
func (t *Table) Lookup(key string) (Descriptor, bool) {
	stored, ok := t.findKey(key)
	if !ok {
		return Descriptor{}, false
	}
	return t.byKey[stored], true
}

// Len returns the number of descriptors in the table.
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the lookup keys in insertion order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// findKey maps key to its stored spelling under the table's comparison.
func (t *Table) findKey(key string) (string, bool) {
	if _, ok := t.byKey[key]; ok {
		return key, true
	}
	if t.fold {
		for _, stored := range t.keys {
			if strings.EqualFold(stored, key) {
				return stored, true
			}
		}
	}
	return "", false
}
