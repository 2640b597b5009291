package capture

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/litetable/litetable-client/litetable"
	"github.com/litetable/litetable-client/reader"
	"github.com/rs/zerolog/log"
)

// Load reads a capture file back into the chunk sequence it recorded.
// Malformed lines are skipped rather than failing the whole load; a capture
// cut off mid-write still replays everything before the damage.
func Load(path string) ([]*litetable.CellChunk, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var chunks []*litetable.CellChunk
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			log.Warn().Err(err).Msg("skipping malformed capture entry")
			continue
		}
		if entry.Chunk == nil {
			continue
		}
		chunks = append(chunks, entry.Chunk)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return chunks, nil
}

// Source replays a recorded chunk sequence as a reader.ChunkStream. Chunks
// of rows outside the requested set are swallowed whole, including their
// commit and reset signals, so the replayed stream stays well-formed.
type Source struct {
	chunks  []*litetable.CellChunk
	rows    litetable.RowSet
	pos     int
	inRow   bool
	skipRow bool
}

func NewSource(chunks []*litetable.CellChunk, rows litetable.RowSet) *Source {
	return &Source{chunks: chunks, rows: rows}
}

func (s *Source) Recv() (*litetable.CellChunk, error) {
	for s.pos < len(s.chunks) {
		ch := s.chunks[s.pos]
		s.pos++

		if !s.inRow && ch.RowKey != "" {
			s.inRow = true
			s.skipRow = !s.rows.Contains(ch.RowKey)
		}

		skip := s.inRow && s.skipRow
		if ch.CommitRow || ch.ResetRow {
			s.inRow = false
			s.skipRow = false
		}
		if skip {
			continue
		}
		return ch, nil
	}
	return nil, io.EOF
}

// Factory opens a fresh replay of the capture file for every read attempt.
type Factory struct {
	path string
}

func NewFactory(path string) *Factory {
	return &Factory{path: path}
}

func (f *Factory) Open(_ context.Context, rows litetable.RowSet) (reader.ChunkStream, error) {
	chunks, err := Load(f.path)
	if err != nil {
		return nil, err
	}
	return NewSource(chunks, rows), nil
}
