// Package history appends one JSON object per cipher run to a local file and
// reads them back.
//
// Records carry the cipher, direction, lengths and outcome of a run, tagged
// with a random run id. The text and the key are never written.
package history

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Message is the slog message of every record.
const Message = "cipher run"

// Entry is one run.
type Entry struct {
	RunID     uuid.UUID
	Time      time.Time
	Cipher    string
	Direction string
	InputLen  int
	OutputLen int
	Verbose   bool
	// Outcome is "ok" or an error class name.
	Outcome  string
	Duration time.Duration
}

// NewRunID returns a fresh random id.
func NewRunID() uuid.UUID { return uuid.New() }

// Recorder writes entries as JSON lines. The zero value discards everything.
type Recorder struct {
	logger *slog.Logger
	closer io.Closer
}

// New writes to w.
func New(w io.Writer) *Recorder {
	return &Recorder{logger: slog.New(slog.NewJSONHandler(w, nil))}
}

// Open appends to path, creating it and its directory (0700/0600) if needed.
func Open(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("history: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	r := New(f)
	r.closer = f

	return r, nil
}

// Record writes e. A nil or zero Recorder is a no-op.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	if r == nil || r.logger == nil {
		return
	}
	r.logger.LogAttrs(ctx, slog.LevelInfo, Message,
		slog.String("run_id", e.RunID.String()),
		slog.String("cipher", e.Cipher),
		slog.String("direction", e.Direction),
		slog.Int("input_len", e.InputLen),
		slog.Int("output_len", e.OutputLen),
		slog.Bool("verbose", e.Verbose),
		slog.String("outcome", e.Outcome),
		slog.Duration("duration", e.Duration),
	)
}

// Close releases the file opened by Open.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}

	return r.closer.Close()
}

// record mirrors the JSON written by Record.
type record struct {
	Time      time.Time `json:"time"`
	Msg       string    `json:"msg"`
	RunID     string    `json:"run_id"`
	Cipher    string    `json:"cipher"`
	Direction string    `json:"direction"`
	InputLen  int       `json:"input_len"`
	OutputLen int       `json:"output_len"`
	Verbose   bool      `json:"verbose"`
	Outcome   string    `json:"outcome"`
	Duration  int64     `json:"duration"`
}

// Read parses every record in r, skipping lines that are not run records.
func Read(r io.Reader) ([]Entry, error) {
	var out []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		var rec record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil || rec.Msg != Message {
			continue
		}
		id, err := uuid.Parse(rec.RunID)
		if err != nil {
			continue
		}
		out = append(out, Entry{
			RunID:     id,
			Time:      rec.Time,
			Cipher:    rec.Cipher,
			Direction: rec.Direction,
			InputLen:  rec.InputLen,
			OutputLen: rec.OutputLen,
			Verbose:   rec.Verbose,
			Outcome:   rec.Outcome,
			Duration:  time.Duration(rec.Duration),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("history: read: %w", err)
	}

	return out, nil
}

// ReadFile reads path; a missing file yields no entries.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Tail returns the last n entries (all when n <= 0).
func Tail(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}

	return entries[len(entries)-n:]
}
