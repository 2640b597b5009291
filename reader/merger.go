package reader

import (
	"github.com/litetable/litetable-client/litetable"
)

// mergeState is the merger's position in the chunk stream.
type mergeState int

const (
	// stateIdle means no row is in progress.
	stateIdle mergeState = iota
	// stateInRow means a row key is fixed and cells are accumulating.
	stateInRow
	// stateFailed is terminal; the read attempt is abandoned.
	stateFailed
)

// merger is the chunk-to-row state machine for one read attempt. It consumes
// chunks strictly in arrival order, assembles cells through the accumulators,
// and emits each row exactly once when its commit chunk arrives.
//
// A merger is single-use and single-threaded. The coordinator discards it on
// any failure and builds a fresh one for the next attempt.
type merger struct {
	state  mergeState
	rowKey string
	row    rowAccumulator
	cell   *cellAccumulator
	emit   func(*litetable.Row) error
	err    error

	// lastEmittedKey is the key of the last row handed to the sink;
	// lastScannedKey is the server's progress bookmark for rows it scanned
	// but filtered out. The resume point is whichever is greater.
	lastEmittedKey string
	lastScannedKey string
}

func newMerger(emit func(*litetable.Row) error) *merger {
	return &merger{emit: emit}
}

// process applies a single chunk. Any returned error is terminal for this
// merger: protocol violations mean the server broke the chunk contract, and
// the attempt must not continue past them.
func (m *merger) process(ch *litetable.CellChunk) error {
	if m.state == stateFailed {
		return m.err
	}
	if err := m.apply(ch); err != nil {
		m.fail(err)
		return err
	}
	return nil
}

func (m *merger) apply(ch *litetable.CellChunk) error {
	if ch.ResetRow {
		return m.applyReset(ch)
	}
	if ch.LastScannedRowKey != "" {
		return m.applyLastScanned(ch)
	}
	if !ch.HasCellData() && !ch.CommitRow {
		return newError(ErrProtocolViolation, "chunk carries no data and no signal")
	}

	if ch.HasCellData() {
		if err := m.applyCellData(ch); err != nil {
			return err
		}
	}
	if ch.CommitRow {
		return m.applyCommit()
	}
	return nil
}

func (m *merger) applyReset(ch *litetable.CellChunk) error {
	if ch.CommitRow {
		return newError(ErrProtocolViolation, "chunk sets both reset_row and commit_row")
	}
	if ch.HasCellData() || ch.LastScannedRowKey != "" {
		return newError(ErrProtocolViolation, "reset_row chunk carries other fields")
	}
	if m.state == stateIdle {
		return newError(ErrProtocolViolation, "reset_row with no row in progress")
	}

	m.row.reset()
	m.cell = nil
	m.rowKey = ""
	m.state = stateIdle
	return nil
}

func (m *merger) applyLastScanned(ch *litetable.CellChunk) error {
	if ch.HasCellData() || ch.CommitRow {
		return newError(ErrProtocolViolation, "last_scanned_row_key chunk carries cell data")
	}
	if m.state != stateIdle {
		return newError(ErrProtocolViolation,
			"last_scanned_row_key %q arrived mid-row for %q", ch.LastScannedRowKey, m.rowKey)
	}
	m.lastScannedKey = ch.LastScannedRowKey
	return nil
}

func (m *merger) applyCellData(ch *litetable.CellChunk) error {
	switch m.state {
	case stateIdle:
		if ch.RowKey == "" {
			return newError(ErrProtocolViolation, "cell chunk with no row key outside a row")
		}
		m.rowKey = ch.RowKey
		m.state = stateInRow
	case stateInRow:
		if ch.RowKey != "" && ch.RowKey != m.rowKey {
			return newError(ErrProtocolViolation,
				"row key changed from %q to %q without commit or reset", m.rowKey, ch.RowKey)
		}
	}

	if m.cell != nil {
		// A continuation chunk may only extend the value.
		if ch.Family != "" || ch.Qualifier != nil || ch.Timestamp != 0 || len(ch.Labels) > 0 {
			return newError(ErrProtocolViolation,
				"cell metadata on a continuation chunk for row %q", m.rowKey)
		}
		if err := m.cell.append(ch.Value); err != nil {
			return err
		}
	} else {
		cell, err := m.startCell(ch)
		if err != nil {
			return err
		}
		m.cell = cell
		if err := m.cell.append(ch.Value); err != nil {
			return err
		}
	}

	if m.cell.complete() {
		m.row.addCell(m.cell.cell())
		m.cell = nil
	}
	return nil
}

// startCell begins a new cell, resolving same-as-previous elision against the
// row accumulator's previous tuple.
func (m *merger) startCell(ch *litetable.CellChunk) (*cellAccumulator, error) {
	family := ch.Family
	if family == "" {
		if !m.row.prev.valid {
			return nil, newError(ErrProtocolViolation,
				"first cell of row %q omits family", m.rowKey)
		}
		family = m.row.prev.family
	}

	var qualifier string
	if ch.Qualifier != nil {
		qualifier = *ch.Qualifier
	} else {
		if !m.row.prev.valid {
			return nil, newError(ErrProtocolViolation,
				"first cell of row %q omits qualifier", m.rowKey)
		}
		qualifier = m.row.prev.qualifier
	}

	return &cellAccumulator{
		family:       family,
		qualifier:    qualifier,
		timestamp:    ch.Timestamp,
		labels:       ch.Labels,
		declaredSize: ch.ValueSize,
	}, nil
}

func (m *merger) applyCommit() error {
	if m.state != stateInRow {
		return newError(ErrProtocolViolation, "commit_row with no row in progress")
	}
	if m.cell != nil {
		return newError(ErrProtocolViolation,
			"commit_row for %q with an incomplete cell", m.rowKey)
	}

	row := m.row.takeRow(m.rowKey)
	m.lastEmittedKey = m.rowKey
	m.rowKey = ""
	m.state = stateIdle
	return m.emit(row)
}

// close marks the end of the attempt's stream. A clean end must land on a
// committed row boundary; anything else means the transport cut the stream
// short and the attempt is retryable.
func (m *merger) close() error {
	switch m.state {
	case stateFailed:
		return m.err
	case stateInRow:
		err := newError(ErrTruncatedStream, "stream ended inside row %q", m.rowKey)
		m.fail(err)
		return err
	default:
		return nil
	}
}

func (m *merger) fail(err error) {
	m.state = stateFailed
	m.err = err
	m.row.reset()
	m.cell = nil
	m.rowKey = ""
}

// resumeKey is the exclusive lower bound for a retried attempt: everything at
// or before it has either been delivered or ruled out by the server.
func (m *merger) resumeKey() string {
	if m.lastScannedKey > m.lastEmittedKey {
		return m.lastScannedKey
	}
	return m.lastEmittedKey
}
