package litetable

// RowRange is a half-open key interval [Start, End). An empty Start means
// "from the beginning of the table" and an empty End means "to the end".
type RowRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Contains reports whether key falls inside the range.
func (r RowRange) Contains(key string) bool {
	if r.Start != "" && key < r.Start {
		return false
	}
	if r.End != "" && key >= r.End {
		return false
	}
	return true
}

// RowSet is the set of rows a read request asks for: explicit keys, key
// ranges, or both. The zero value means "the whole table".
type RowSet struct {
	Keys   []string   `json:"keys,omitempty"`
	Ranges []RowRange `json:"ranges,omitempty"`
}

// Contains reports whether the set asks for the given row.
func (s RowSet) Contains(key string) bool {
	for _, k := range s.Keys {
		if k == key {
			return true
		}
	}
	for _, r := range s.Ranges {
		if r.Contains(key) {
			return true
		}
	}
	return false
}

// AfterKey returns the subset of rows strictly after key. It is used to
// narrow a retried read to everything not yet delivered: keys at or before
// the resume point are dropped, ranges that end at or before it disappear,
// and ranges that straddle it get their start clipped just past it.
func (s RowSet) AfterKey(key string) RowSet {
	if key == "" {
		return s
	}

	var out RowSet
	for _, k := range s.Keys {
		if k > key {
			out.Keys = append(out.Keys, k)
		}
	}
	for _, r := range s.Ranges {
		if r.End != "" && r.End <= key {
			continue
		}
		if r.Start == "" || r.Start <= key {
			// half-open start just past the resume key
			r.Start = key + "\x00"
		}
		out.Ranges = append(out.Ranges, r)
	}
	return out
}

// Empty reports whether the set can no longer match any row. Callers that
// mean "the whole table" should use AllRows, not the zero value, so that
// narrowing can tell "unbounded" apart from "exhausted".
func (s RowSet) Empty() bool {
	return len(s.Keys) == 0 && len(s.Ranges) == 0
}

// AllRows is the unbounded row set covering the entire table.
func AllRows() RowSet {
	return RowSet{Ranges: []RowRange{{}}}
}
