package litetable

// Cell is a single reconstructed column value within a row.
//
// Timestamp is in microseconds since the epoch; it is 0 for tables that do
// not version their values. Labels are carried through from the server
// unmodified and are usually empty.
type Cell struct {
	Family    string   `json:"family"`
	Qualifier string   `json:"qualifier"`
	Timestamp int64    `json:"ts"`
	Labels    []string `json:"labels,omitempty"`
	Value     []byte   `json:"value"`
}

// Row is a fully reconstructed row from a streamed read:
//
// Example:
//
//	Row{
//	  Key: "row1",
//	  Cells: []Cell{
//	    {Family: "family1", Qualifier: "qualifier1", Value: []byte("value1")},
//	    {Family: "family1", Qualifier: "qualifier2", Value: []byte("value2")},
//	    {Family: "family2", Qualifier: "qualifier1", Value: []byte("value3")},
//	  },
//	}
//
// Cells appear in the order the server delivered them: grouped by family,
// then qualifier, newest timestamp first within a qualifier. The client never
// re-sorts; the ordering contract belongs to the server.
type Row struct {
	Key   string `json:"key"`
	Cells []Cell `json:"cells"`
}
