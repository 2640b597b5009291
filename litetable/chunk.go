package litetable

// CellChunk is one wire-level fragment of a streamed read response. A cell
// may span several chunks and a row spans at least one.
//
// Fields elide values that repeat the previous cell: an empty Family means
// "same family as the previous cell" and a nil Qualifier means "same
// qualifier". Qualifier is a pointer so an explicitly empty qualifier stays
// distinguishable from an elided one.
type CellChunk struct {
	// RowKey is set only on the first chunk of each row.
	RowKey string `json:"key,omitempty"`

	Family    string   `json:"family,omitempty"`
	Qualifier *string  `json:"qualifier,omitempty"`
	Timestamp int64    `json:"ts,omitempty"`
	Labels    []string `json:"labels,omitempty"`

	// Value is this chunk's fragment of the cell value. ValueSize is the
	// total size of the cell's value when it spans multiple chunks; 0 means
	// the fragment is the whole value.
	Value     []byte `json:"value,omitempty"`
	ValueSize int    `json:"size,omitempty"`

	// ResetRow discards everything accumulated for the current row. A reset
	// chunk carries no other meaningful field.
	ResetRow bool `json:"reset,omitempty"`
	// CommitRow marks the current row complete. Never set together with
	// ResetRow.
	CommitRow bool `json:"commit,omitempty"`
	// LastScannedRowKey is a progress marker for rows the server scanned but
	// filtered out entirely; it advances the resume point without emitting a
	// row.
	LastScannedRowKey string `json:"scanned,omitempty"`
}

// HasCellData reports whether the chunk carries any cell content, as opposed
// to being a pure control chunk (reset or last-scanned marker).
func (c *CellChunk) HasCellData() bool {
	return c.RowKey != "" || c.Family != "" || c.Qualifier != nil ||
		c.Timestamp != 0 || len(c.Labels) > 0 || len(c.Value) > 0 || c.ValueSize != 0
}
