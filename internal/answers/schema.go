package answers

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Schema is the ordered set of answer columns observed across a group's
// records. The first record that introduces a column determines its position.
type Schema struct {
	cols *orderedmap.OrderedMap[string, struct{}]
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{cols: orderedmap.NewOrderedMap[string, struct{}]()}
}

// Add inserts a column name unless it is already present.
func (s *Schema) Add(name string) {
	if _, ok := s.cols.Get(name); !ok {
		s.cols.Set(name, struct{}{})
	}
}

// AddEntries inserts the column names of parsed entries, preserving order.
func (s *Schema) AddEntries(entries []Entry) {
	for _, e := range entries {
		s.Add(e.Column)
	}
}

// Has reports whether the schema contains a column.
func (s *Schema) Has(name string) bool {
	_, ok := s.cols.Get(name)
	return ok
}

// Columns returns the column names in first-seen order.
func (s *Schema) Columns() []string {
	cols := make([]string, 0, s.cols.Len())
	for el := s.cols.Front(); el != nil; el = el.Next() {
		cols = append(cols, el.Key)
	}
	return cols
}

// Len returns the number of distinct columns.
func (s *Schema) Len() int {
	return s.cols.Len()
}
