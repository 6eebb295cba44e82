// Package diff compares extracted functions against a baseline of known names.
package diff

import (
	"sort"

	"github.com/agentflare-ai/code2content/internal/extract"
)

// NameSet is an unordered set of function names.
type NameSet map[string]struct{}

// NewNameSet builds a set from names.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Has reports whether name is in the set. A nil set is empty.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names.
func (s NameSet) Len() int { return len(s) }

// Sorted returns the names in lexical order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewNames returns the names present in records but absent from baseline.
func NewNames(records []extract.FunctionRecord, baseline NameSet) NameSet {
	added := NameSet{}
	for _, rec := range records {
		if !baseline.Has(rec.Name) {
			added[rec.Name] = struct{}{}
		}
	}
	return added
}

// Added returns one record per name in NewNames, ordered by first appearance in records.
// When a name occurs more than once the first record is used.
func Added(records []extract.FunctionRecord, baseline NameSet) []extract.FunctionRecord {
	pending := NewNames(records, baseline)
	var added []extract.FunctionRecord
	for _, rec := range records {
		if !pending.Has(rec.Name) {
			continue
		}
		delete(pending, rec.Name)
		added = append(added, rec)
	}
	return added
}
