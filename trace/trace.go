package trace

import (
	"fmt"
	"strings"
)

// Func receives one rendered trace line.
type Func func(line string)

// Nop discards every line.
func Nop(string) {}

// Recorder accumulates lines in emission order. The zero value is ready to use.
// A Recorder is not safe for concurrent use; give each operation its own.
type Recorder struct {
	lines []string
}

// Record appends line.
func (r *Recorder) Record(line string) {
	r.lines = append(r.lines, line)
}

// Func returns r.Record as a Func.
func (r *Recorder) Func() Func {
	return r.Record
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)

	return out
}

// Len returns the number of recorded lines.
func (r *Recorder) Len() int { return len(r.lines) }

// Emitter formats lines into a Func; a nil Func behaves like Nop.
type Emitter struct {
	fn Func
}

// NewEmitter wraps fn.
func NewEmitter(fn Func) Emitter {
	return Emitter{fn: fn}
}

// Enabled reports whether lines will be delivered anywhere.
func (e Emitter) Enabled() bool { return e.fn != nil }

// Linef formats and emits one line.
func (e Emitter) Linef(format string, args ...any) {
	if e.fn == nil {
		return
	}
	e.fn(fmt.Sprintf(format, args...))
}

// Grid emits each row of cells, indented, with cells separated by two spaces
// ("m  o  n  a  r").
func (e Emitter) Grid(indent string, rows [][]rune) {
	if e.fn == nil {
		return
	}
	for _, line := range GridLines(indent, rows) {
		e.fn(line)
	}
}

// GridLines renders rows the way Emitter.Grid does, without emitting.
func GridLines(indent string, rows [][]rune) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for j, r := range row {
			cells[j] = string(r)
		}
		out = append(out, indent+strings.Join(cells, "  "))
	}

	return out
}
