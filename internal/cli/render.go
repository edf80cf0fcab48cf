package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katalvlaran/cipherlab/cipher"
	"github.com/katalvlaran/cipherlab/internal/history"
)

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })

	return ok && term.IsTerminal(int(f.Fd()))
}

// colorProfile resolves output.color against the writer: "never" and
// non-terminal writers get Ascii unless "always" is set.
func colorProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case "never":
		return termenv.Ascii
	case "always":
		return termenv.ANSI256
	}
	if !isTerminal(w) || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	return termenv.NewOutput(w).EnvColorProfile()
}

type renderer struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	trace lipgloss.Style
	dim   lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
}

func newRenderer(w io.Writer, profile termenv.Profile) *renderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(profile)

	return &renderer{
		title: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label: lr.NewStyle().Foreground(lipgloss.Color("245")),
		value: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
		trace: lr.NewStyle().Foreground(lipgloss.Color("252")).TabWidth(lipgloss.NoTabConversion),
		dim:   lr.NewStyle().Foreground(lipgloss.Color("242")),
		ok:    lr.NewStyle().Foreground(lipgloss.Color("42")),
		err:   lr.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// result prints the trace (if any) followed by the output line.
func (r *renderer) result(w io.Writer, req cipher.Request, res cipher.Result) {
	if len(res.Trace) > 0 {
		fmt.Fprintln(w, r.title.Render(fmt.Sprintf("%s %s trace", req.Cipher, req.Direction)))
		for _, line := range res.Trace {
			fmt.Fprintln(w, r.trace.Render(line))
		}
		fmt.Fprintln(w)
	}
	label := "Encrypted"
	if req.Direction == cipher.Decrypt {
		label = "Decrypted"
	}
	fmt.Fprintf(w, "%s %s\n", r.label.Render(label+" message:"), r.value.Render(res.Text))
}

// history prints one line per entry, newest last.
func (r *renderer) history(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, r.dim.Render("no runs recorded"))
		return
	}
	for _, e := range entries {
		outcome := r.ok.Render(e.Outcome)
		if e.Outcome != "ok" {
			outcome = r.err.Render(e.Outcome)
		}
		fmt.Fprintf(w, "%s  %s  %-9s %-7s %4d -> %-4d %s\n",
			r.dim.Render(e.Time.Local().Format("2006-01-02 15:04:05")),
			r.dim.Render(shortID(e.RunID.String())),
			e.Cipher, e.Direction, e.InputLen, e.OutputLen, outcome)
	}
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}

	return id
}
