package history_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/cipherlab/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(cipher string) history.Entry {
	return history.Entry{
		RunID:     history.NewRunID(),
		Cipher:    cipher,
		Direction: "encrypt",
		InputLen:  11,
		OutputLen: 12,
		Outcome:   "ok",
		Duration:  1500 * time.Microsecond,
	}
}

// TestRecordRead_RoundTrip writes JSON lines and parses them back.
func TestRecordRead_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rec := history.New(&buf)
	a, b := entry("playfair"), entry("hill")
	b.Outcome = "invalid_key"
	rec.Record(context.Background(), a)
	rec.Record(context.Background(), b)

	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), `"msg":"cipher run"`)

	got, err := history.Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.RunID, got[0].RunID)
	assert.Equal(t, "playfair", got[0].Cipher)
	assert.Equal(t, 11, got[0].InputLen)
	assert.Equal(t, 12, got[0].OutputLen)
	assert.Equal(t, 1500*time.Microsecond, got[0].Duration)
	assert.False(t, got[0].Time.IsZero())
	assert.Equal(t, "invalid_key", got[1].Outcome)
}

// TestRead_SkipsForeignLines ignores garbage and other messages.
func TestRead_SkipsForeignLines(t *testing.T) {
	in := "not json\n" + `{"msg":"other","run_id":"x"}` + "\n"
	got, err := history.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestOpen_AppendsAcrossSessions keeps earlier runs.
func TestOpen_AppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.jsonl")
	for i := 0; i < 2; i++ {
		rec, err := history.Open(path)
		require.NoError(t, err)
		rec.Record(context.Background(), entry("railfence"))
		require.NoError(t, rec.Close())
	}
	got, err := history.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotEqual(t, got[0].RunID, got[1].RunID)
}

// TestReadFile_Missing is empty, not an error.
func TestReadFile_Missing(t *testing.T) {
	got, err := history.ReadFile(filepath.Join(t.TempDir(), "none.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestNilRecorder is safe to use.
func TestNilRecorder(t *testing.T) {
	var rec *history.Recorder
	rec.Record(context.Background(), entry("hill"))
	assert.NoError(t, rec.Close())

	var zero history.Recorder
	zero.Record(context.Background(), entry("hill"))
}

// TestTail keeps the newest entries.
func TestTail(t *testing.T) {
	es := []history.Entry{entry("a"), entry("b"), entry("c")}
	assert.Equal(t, es[1:], history.Tail(es, 2))
	assert.Equal(t, es, history.Tail(es, 0))
	assert.Equal(t, es, history.Tail(es, 10))
}
