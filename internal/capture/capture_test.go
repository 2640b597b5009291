package capture

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/litetable/litetable-client/litetable"
	"github.com/stretchr/testify/require"
)

func qual(q string) *string {
	return &q
}

func TestNew(t *testing.T) {
	req := require.New(t)

	t.Run("invalid config", func(t *testing.T) {
		m, err := New(&Config{})
		req.Error(err)
		req.Nil(m)
	})

	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "capture.log")
		m, err := New(&Config{Path: path})
		req.NoError(err)
		req.NotNil(m)
		req.NoError(m.Close())
	})
}

func TestCapture_RoundTrip(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "capture.log")
	m, err := New(&Config{Path: path})
	req.NoError(err)

	chunks := []*litetable.CellChunk{
		{RowKey: "r1", Family: "cf", Qualifier: qual("c1"), ValueSize: 4, Value: []byte("ab")},
		{Value: []byte("cd"), CommitRow: true},
		{LastScannedRowKey: "r9"},
	}
	for _, ch := range chunks {
		req.NoError(m.Apply(&Entry{Chunk: ch, Timestamp: time.Now()}))
	}
	req.NoError(m.Close())

	loaded, err := Load(path)
	req.NoError(err)
	req.Equal(chunks, loaded)
}

func TestLoad_SkipsMalformedEntries(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "capture.log")
	content := `{"chunk":{"key":"r1","family":"cf","qualifier":"c1","value":"eA==","commit":true}}
this line was cut off mid-wr
{"chunk":{"scanned":"r5"}}
`
	req.NoError(os.WriteFile(path, []byte(content), 0640))

	loaded, err := Load(path)
	req.NoError(err)
	req.Len(loaded, 2)
	req.Equal("r1", loaded[0].RowKey)
	req.Equal("r5", loaded[1].LastScannedRowKey)
}

func TestSource_FiltersExcludedRows(t *testing.T) {
	req := require.New(t)

	chunks := []*litetable.CellChunk{
		{RowKey: "r1", Family: "cf", Qualifier: qual("c1"), Value: []byte("a"), CommitRow: true},
		{RowKey: "r2", Family: "cf", Qualifier: qual("c1"), ValueSize: 2, Value: []byte("b")},
		{Value: []byte("c"), CommitRow: true},
		{LastScannedRowKey: "r3"},
		{RowKey: "r4", Family: "cf", Qualifier: qual("c1"), Value: []byte("d"), CommitRow: true},
	}

	src := NewSource(chunks, litetable.RowSet{Keys: []string{"r4"}})

	var got []*litetable.CellChunk
	for {
		ch, err := src.Recv()
		if err == io.EOF {
			break
		}
		req.NoError(err)
		got = append(got, ch)
	}

	// r1's and r2's chunks are swallowed whole, including r2's commit; the
	// scanned marker and r4 pass through
	req.Equal([]*litetable.CellChunk{chunks[3], chunks[4]}, got)
}

func TestFactory_Open(t *testing.T) {
	req := require.New(t)

	t.Run("missing capture file", func(t *testing.T) {
		f := NewFactory(filepath.Join(t.TempDir(), "nope.log"))
		stream, err := f.Open(context.Background(), litetable.AllRows())
		req.Error(err)
		req.Nil(stream)
	})

	t.Run("replays the recorded stream", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "capture.log")
		m, err := New(&Config{Path: path})
		req.NoError(err)
		req.NoError(m.Apply(&Entry{
			Chunk:     &litetable.CellChunk{RowKey: "r1", Family: "cf", Qualifier: qual("c1"), Value: []byte("x"), CommitRow: true},
			Timestamp: time.Now(),
		}))
		req.NoError(m.Close())

		f := NewFactory(path)
		stream, err := f.Open(context.Background(), litetable.AllRows())
		req.NoError(err)

		ch, err := stream.Recv()
		req.NoError(err)
		req.Equal("r1", ch.RowKey)

		_, err = stream.Recv()
		req.Equal(io.EOF, err)
	})
}
