package litetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowRange_Contains(t *testing.T) {
	req := require.New(t)

	unbounded := RowRange{}
	req.True(unbounded.Contains(""))
	req.True(unbounded.Contains("anything"))

	r := RowRange{Start: "b", End: "d"}
	req.False(r.Contains("a"))
	req.True(r.Contains("b"))
	req.True(r.Contains("c"))
	req.False(r.Contains("d")) // End is exclusive
	req.False(r.Contains("e"))
}

func TestRowSet_AfterKey(t *testing.T) {
	tests := map[string]struct {
		set  RowSet
		key  string
		want RowSet
	}{
		"empty key leaves the set alone": {
			set:  RowSet{Keys: []string{"a"}},
			key:  "",
			want: RowSet{Keys: []string{"a"}},
		},
		"keys at or before the resume point drop": {
			set:  RowSet{Keys: []string{"a", "b", "c"}},
			key:  "b",
			want: RowSet{Keys: []string{"c"}},
		},
		"range ending before the resume point drops": {
			set:  RowSet{Ranges: []RowRange{{Start: "a", End: "b"}, {Start: "x", End: "z"}}},
			key:  "c",
			want: RowSet{Ranges: []RowRange{{Start: "x", End: "z"}}},
		},
		"straddling range gets its start clipped": {
			set:  RowSet{Ranges: []RowRange{{Start: "a", End: "z"}}},
			key:  "m",
			want: RowSet{Ranges: []RowRange{{Start: "m\x00", End: "z"}}},
		},
		"unbounded range stays unbounded above": {
			set:  AllRows(),
			key:  "m",
			want: RowSet{Ranges: []RowRange{{Start: "m\x00"}}},
		},
		"everything consumed": {
			set:  RowSet{Keys: []string{"a"}, Ranges: []RowRange{{Start: "a", End: "b"}}},
			key:  "z",
			want: RowSet{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.set.AfterKey(tc.key))
		})
	}
}

func TestRowSet_AfterKey_ResumeExcludesDelivered(t *testing.T) {
	req := require.New(t)

	// the clipped start must exclude the resume key itself but admit its
	// immediate successor
	narrowed := AllRows().AfterKey("r1")
	req.False(narrowed.Contains("r1"))
	req.True(narrowed.Contains("r1\x00"))
	req.True(narrowed.Contains("r2"))
}

func TestRowSet_ContainsAndEmpty(t *testing.T) {
	req := require.New(t)

	s := RowSet{Keys: []string{"k1"}, Ranges: []RowRange{{Start: "m", End: "p"}}}
	req.True(s.Contains("k1"))
	req.True(s.Contains("n"))
	req.False(s.Contains("a"))
	req.False(s.Empty())

	req.True(RowSet{}.Empty())
	req.False(AllRows().Empty())
	req.True(AllRows().Contains("anything"))
}
