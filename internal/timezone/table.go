package timezone

import "github.com/julianstephens/zoneline/internal/constants"

// Offset is a named offset from UTC in hours. Offsets may be fractional
// (e.g. 5.5 for IST) and negative.
type Offset struct {
	Label  string
	Offset float64
}

// Table is an ordered set of offsets keyed by label. Insertion order is
// the cyclic navigation order. A Table is never empty.
type Table struct {
	entries []Offset
	index   map[string]int
}

// DefaultSeeds are the entries a fresh configuration starts with.
var DefaultSeeds = []Offset{
	{Label: "PDT", Offset: -7},
	{Label: "JST", Offset: 9},
}

// NewTable builds a table holding the built-in UTC entry followed by seeds.
func NewTable(seeds ...Offset) *Table {
	t := &Table{}
	t.set(append([]Offset{{Label: constants.DefaultTimezoneLabel, Offset: 0}}, seeds...))
	return t
}

// set rebuilds the table from entries. A repeated label keeps the position
// of its first occurrence and takes the last offset.
func (t *Table) set(entries []Offset) {
	t.entries = make([]Offset, 0, len(entries))
	t.index = make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := t.index[e.Label]; ok {
			t.entries[i].Offset = e.Offset
			continue
		}
		t.index[e.Label] = len(t.entries)
		t.entries = append(t.entries, e)
	}
}

// Replace swaps the whole entry set. It returns false and leaves the table
// untouched when entries is empty.
func (t *Table) Replace(entries []Offset) bool {
	if len(entries) == 0 {
		return false
	}
	t.set(entries)
	return true
}

// OffsetOf returns the offset stored for label, or 0 when label is unknown.
func (t *Table) OffsetOf(label string) float64 {
	if i, ok := t.index[label]; ok {
		return t.entries[i].Offset
	}
	return 0
}

// Next returns the label after label, wrapping to the first entry. An
// unknown label yields the first entry.
func (t *Table) Next(label string) string {
	i, ok := t.index[label]
	if !ok || i == len(t.entries)-1 {
		return t.entries[0].Label
	}
	return t.entries[i+1].Label
}

// Previous returns the label before label, wrapping to the last entry. An
// unknown label yields the last entry.
func (t *Table) Previous(label string) string {
	i, ok := t.index[label]
	if !ok || i == 0 {
		return t.entries[len(t.entries)-1].Label
	}
	return t.entries[i-1].Label
}

func (t *Table) Contains(label string) bool {
	_, ok := t.index[label]
	return ok
}

func (t *Table) First() string {
	return t.entries[0].Label
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Labels returns the labels in cyclic order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.entries))
	for i, e := range t.entries {
		labels[i] = e.Label
	}
	return labels
}

// Entries returns a copy of the entries in cyclic order.
func (t *Table) Entries() []Offset {
	out := make([]Offset, len(t.entries))
	copy(out, t.entries)
	return out
}
