package reader

import (
	"github.com/litetable/litetable-client/litetable"
)

// cellAccumulator assembles one cell's value across however many chunks it
// takes. declaredSize of 0 means the first fragment is the whole value.
type cellAccumulator struct {
	family       string
	qualifier    string
	timestamp    int64
	labels       []string
	value        []byte
	declaredSize int
}

func (c *cellAccumulator) append(fragment []byte) error {
	c.value = append(c.value, fragment...)
	if c.declaredSize > 0 && len(c.value) > c.declaredSize {
		return newError(ErrProtocolViolation,
			"cell value overflows declared size: got %d of %d bytes",
			len(c.value), c.declaredSize)
	}
	return nil
}

func (c *cellAccumulator) complete() bool {
	return c.declaredSize == 0 || len(c.value) == c.declaredSize
}

func (c *cellAccumulator) cell() litetable.Cell {
	return litetable.Cell{
		Family:    c.family,
		Qualifier: c.qualifier,
		Timestamp: c.timestamp,
		Labels:    c.labels,
		Value:     c.value,
	}
}

// prevTuple remembers the last accepted cell's identifying fields so a later
// chunk can elide the ones that repeat. It is copied by value on every
// accepted cell; the accumulators never alias each other's state.
type prevTuple struct {
	family    string
	qualifier string
	valid     bool
}

// rowAccumulator holds the completed cells of the row being built, in
// arrival order.
type rowAccumulator struct {
	cells []litetable.Cell
	prev  prevTuple
}

func (r *rowAccumulator) addCell(c litetable.Cell) {
	r.cells = append(r.cells, c)
	r.prev = prevTuple{family: c.Family, qualifier: c.Qualifier, valid: true}
}

func (r *rowAccumulator) reset() {
	r.cells = nil
	r.prev = prevTuple{}
}

// takeRow snapshots the accumulated cells into an immutable Row and clears
// the accumulator for the next row.
func (r *rowAccumulator) takeRow(key string) *litetable.Row {
	row := &litetable.Row{
		Key:   key,
		Cells: r.cells,
	}
	r.cells = nil
	r.prev = prevTuple{}
	return row
}
