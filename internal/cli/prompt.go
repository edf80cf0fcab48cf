package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// ErrAborted is returned when the user leaves a prompt with Ctrl+C or EOF.
var ErrAborted = errors.New("input aborted")

// Prompter reads one answer per call.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// linePrompter is the interactive terminal prompter with line editing.
type linePrompter struct {
	state *liner.State
}

// NewLinePrompter takes over the terminal until Close.
func NewLinePrompter() Prompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	return &linePrompter{state: state}
}

func (p *linePrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}

	return line, nil
}

func (p *linePrompter) Close() error { return p.state.Close() }

// scanPrompter reads answers line by line from a non-terminal input.
type scanPrompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewScanPrompter prompts on out and reads from in; used when stdin is piped.
func NewScanPrompter(in io.Reader, out io.Writer) Prompter {
	return &scanPrompter{sc: bufio.NewScanner(in), out: out}
}

func (p *scanPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}

		return "", ErrAborted
	}

	return strings.TrimRight(p.sc.Text(), "\r"), nil
}

func (p *scanPrompter) Close() error { return nil }

// question is one interactive field.
type question struct {
	title  string // shown above the prompt
	prompt string // "cipher> "
}

// ask re-prompts until accept returns nil. accept's error is shown and the
// question is asked again; a Prompter error ends the loop.
func ask(p Prompter, out io.Writer, r *renderer, q question, accept func(string) error) error {
	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, r.dim.Render(q.title))
		answer, err := p.Prompt(q.prompt)
		if err != nil {
			return err
		}
		if err = accept(answer); err != nil {
			fmt.Fprintln(out, r.err.Render("Error: "+err.Error()))
			continue
		}

		return nil
	}
}
