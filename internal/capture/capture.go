// Package capture records and replays the raw chunk stream of a streamed
// read. A capture file is JSON lines, one chunk per line, and can be fed
// back through the reader to debug reassembly against real server output.
package capture

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/litetable/litetable-client/litetable"
)

// Entry represents one captured chunk from a streamed read
type Entry struct {
	Chunk     *litetable.CellChunk `json:"chunk"`
	Timestamp time.Time            `json:"timestamp"`
}

// Manager appends chunks to a capture file as they arrive off the wire.
type Manager struct {
	mu   sync.Mutex
	file *os.File
	path string
}

type Config struct {
	// Path of the capture file; parent directories are created as needed.
	Path string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Path == "" {
		errGrp = append(errGrp, errors.New("capture path cannot be empty"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, errors.New("failed to create capture directory: " + err.Error())
	}

	file, err := os.OpenFile(cfg.Path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0640)
	if err != nil {
		return nil, errors.New("failed to open capture file: " + err.Error())
	}

	return &Manager{
		file: file,
		path: cfg.Path,
	}, nil
}

// Apply appends one chunk to the capture file, one JSON entry per line.
func (m *Manager) Apply(e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	if _, err = m.file.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write to capture file: %w", err)
	}

	return nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.file.Close()
}
