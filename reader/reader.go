// Package reader reconstructs whole rows from the cell-chunk stream a
// LiteTable streamed read delivers. The transport hands it raw chunks; it
// hands the caller complete rows, retrying truncated or transiently failed
// attempts from the last safe resume point.
package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/litetable/litetable-client/litetable"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=streams_mock.go -package=reader -source=reader.go

// ChunkStream is one read attempt's ordered chunk sequence. Recv returns
// io.EOF on a clean end of stream and any other error when the transport
// fails mid-attempt.
type ChunkStream interface {
	Recv() (*litetable.CellChunk, error)
}

// StreamFactory opens one attempt of the underlying streamed read for the
// given row set. The transport layer behind it is a collaborator; the reader
// only requires that chunks arrive in the order the server sent them.
type StreamFactory interface {
	Open(ctx context.Context, rows litetable.RowSet) (ChunkStream, error)
}

// errStopped signals that the caller's row function returned false. It never
// escapes ReadRows.
var errStopped = errors.New("read stopped by caller")

// Reader drives resumable streamed reads. A single Reader is safe for
// concurrent use; each ReadRows call runs its attempts sequentially and
// shares no state with other calls.
type Reader struct {
	streams StreamFactory
	retry   RetrySettings
}

type Config struct {
	Streams StreamFactory
	// Retry bounds attempt count and backoff. Nil means DefaultRetrySettings.
	Retry *RetrySettings
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Streams == nil {
		errGrp = append(errGrp, errors.New("stream factory is required"))
	}
	if c.Retry != nil {
		errGrp = append(errGrp, c.Retry.validate())
	}
	return errors.Join(errGrp...)
}

// New creates a new resumable reader
func New(cfg *Config) (*Reader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	retry := DefaultRetrySettings()
	if cfg.Retry != nil {
		retry = *cfg.Retry
	}

	return &Reader{
		streams: cfg.Streams,
		retry:   retry,
	}, nil
}

// ReadRows reads every requested row and calls fn once per row, in the order
// the server committed them. Returning false from fn stops the read early
// with a nil error.
//
// Attempts that end in a truncated stream or a transient transport error are
// retried from just past the last fully delivered row, so fn never sees a
// partial row and never sees the same row twice. Protocol violations and
// retry exhaustion surface as errors.
func (r *Reader) ReadRows(ctx context.Context, rows litetable.RowSet, fn func(*litetable.Row) bool) error {
	if rows.Empty() {
		rows = litetable.AllRows()
	}

	readID := uuid.NewString()
	boff := r.retry.newBackOff()

	var lastErr error
	for attempt := 1; attempt <= r.retry.MaxAttempts; attempt++ {
		log.Debug().
			Str("read_id", readID).
			Int("attempt", attempt).
			Msg("starting read attempt")

		err := r.attempt(ctx, &rows, fn)
		if err == nil || errors.Is(err, errStopped) {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !isRetryable(err) {
			log.Error().Str("read_id", readID).Err(err).Msg("read failed")
			return err
		}
		lastErr = err

		// Everything requested was delivered before the stream died; the
		// failure cost us nothing.
		if rows.Empty() {
			return nil
		}

		if attempt == r.retry.MaxAttempts {
			break
		}
		log.Debug().
			Str("read_id", readID).
			Err(err).
			Msg("read attempt failed; will resume")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(boff.NextBackOff()):
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, r.retry.MaxAttempts, lastErr)
}

// attempt runs one pass of the streamed read through a fresh merger. On
// failure it narrows rows to everything past the attempt's resume point so
// the next attempt re-requests only undelivered rows.
func (r *Reader) attempt(ctx context.Context, rows *litetable.RowSet, fn func(*litetable.Row) bool) error {
	stream, err := r.streams.Open(ctx, *rows)
	if err != nil {
		return err
	}

	m := newMerger(func(row *litetable.Row) error {
		if !fn(row) {
			return errStopped
		}
		return nil
	})

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ch, err := stream.Recv()
		if err == io.EOF {
			if err := m.close(); err != nil {
				*rows = rows.AfterKey(m.resumeKey())
				return err
			}
			return nil
		}
		if err != nil {
			*rows = rows.AfterKey(m.resumeKey())
			return err
		}

		if err := m.process(ch); err != nil {
			if errors.Is(err, errStopped) {
				return err
			}
			*rows = rows.AfterKey(m.resumeKey())
			return err
		}
	}
}
