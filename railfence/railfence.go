package railfence

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cipherlab/trace"
)

// PadLetter fills the message up to PaddedLength. It is upper case so that
// padding stays distinguishable from a lower-case message.
const PadLetter = 'X'

// Option configures an Encode/Decode call.
type Option func(*Options)

// Options holds per-call settings.
type Options struct {
	// OnTrace receives verbose trace lines; nil disables tracing.
	OnTrace trace.Func
}

// WithTrace routes verbose trace lines to fn.
func WithTrace(fn trace.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrace = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Encode pads message and reads its zigzag rail by rail.
//
// Implementation:
//   - Stage 1: pad with PadLetter to PaddedLength(len, rails).
//   - Stage 2: bucket every rune by RowAt; concatenate buckets 0..rails-1.
//
// Errors: ErrKeyNotValidated.
// Complexity: O(n).
func Encode(key Key, message string, opts ...Option) (string, error) {
	if !key.Valid() {
		return "", fmt.Errorf("railfence.Encode: %w", ErrKeyNotValidated)
	}
	o := buildOptions(opts)
	rails := key.Rails()

	msg := []rune(message)
	total := PaddedLength(len(msg), rails)
	padded := make([]rune, total)
	copy(padded, msg)
	for i := len(msg); i < total; i++ {
		padded[i] = PadLetter
	}

	em := trace.NewEmitter(o.OnTrace)
	em.Linef("Padded message:")
	em.Linef("\t%s", string(padded))

	path := Path(total, rails)
	next := offsets(rowCounts(path, rails))
	out := make([]rune, total)
	for i, row := range path {
		out[next[row]] = padded[i]
		next[row]++
	}
	emitGrid(em, padded, path, rails)

	return string(out), nil
}

// Decode inverts Encode for a ciphertext of any length. Padding is kept.
//
// Implementation:
//   - Stage 1: recompute the path for len(ciphertext) and count runes per rail.
//   - Stage 2: slice the ciphertext into consecutive rail segments.
//   - Stage 3: walk the path, taking the next rune from the visited rail.
//
// Errors: ErrKeyNotValidated.
// Complexity: O(n).
func Decode(key Key, ciphertext string, opts ...Option) (string, error) {
	if !key.Valid() {
		return "", fmt.Errorf("railfence.Decode: %w", ErrKeyNotValidated)
	}
	o := buildOptions(opts)
	rails := key.Rails()

	ct := []rune(ciphertext)
	path := Path(len(ct), rails)
	next := offsets(rowCounts(path, rails))
	out := make([]rune, len(ct))
	for i, row := range path {
		out[i] = ct[next[row]]
		next[row]++
	}

	em := trace.NewEmitter(o.OnTrace)
	em.Linef("Ciphertext:")
	em.Linef("\t%s", ciphertext)
	emitGrid(em, out, path, rails)

	return string(out), nil
}

func rowCounts(path []int, rails int) []int {
	counts := make([]int, rails)
	for _, row := range path {
		counts[row]++
	}

	return counts
}

// offsets turns per-rail counts into the index where each rail starts.
func offsets(counts []int) []int {
	starts := make([]int, len(counts))
	sum := 0
	for i, c := range counts {
		starts[i] = sum
		sum += c
	}

	return starts
}

// emitGrid renders the rails × len(text) grid, blank cells as '.', one tab between cells.
func emitGrid(em trace.Emitter, text []rune, path []int, rails int) {
	if !em.Enabled() {
		return
	}
	em.Linef("Matrix:")
	used := 0
	for _, row := range path {
		if row+1 > used {
			used = row + 1
		}
	}
	for r := 0; r < used; r++ {
		cells := make([]string, len(text))
		for i, row := range path {
			cells[i] = "."
			if row == r {
				cells[i] = string(text[i])
			}
		}
		em.Linef("\t%s", strings.Join(cells, "\t"))
	}
	if used < rails {
		em.Linef("\t(%d empty rails)", rails-used)
	}
}
