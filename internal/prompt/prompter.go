package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/sortbench/internal/ui/styles"
)

// Prompter asks questions on a line-oriented terminal session.
// All prompts of one Prompter share the same buffered reader, so input
// typed ahead is kept for the next prompt. A Prompter is not safe for
// concurrent use.
type Prompter struct {
	src io.Reader
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading lines from in and writing to out.
// Styling is downsampled to what out supports; pipes and buffers get plain
// text.
func New(in io.Reader, out io.Writer) *Prompter {
	return newPrompter(in, out, os.Environ())
}

func newPrompter(in io.Reader, out io.Writer, environ []string) *Prompter {
	return &Prompter{
		src: in,
		in:  bufio.NewReader(in),
		out: colorprofile.NewWriter(out, environ),
	}
}

// Remaining returns the input not consumed by the prompts: read-ahead
// bytes followed by the rest of the source. With nothing read ahead it is
// the source itself, so a terminal stays a terminal for whoever reads next.
func (p *Prompter) Remaining() io.Reader {
	if p.in.Buffered() == 0 {
		return p.src
	}
	return p.in
}

// readLine returns the next line without its terminator.
// A final line without a trailing newline is returned before io.EOF.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// println writes s styled with style and a trailing newline.
func (p *Prompter) println(style lipgloss.Style, s string) {
	fmt.Fprintln(p.out, style.Render(s))
}

// correct prints the corrective message for a rejected line.
func (p *Prompter) correct(e *InputError) {
	p.println(styles.CorrectionStyle, e.Message)
}

// ask runs the prompt loop: render, read one line, parse. Rejected lines
// print their corrective message and loop; only read errors end it early.
func ask[T any](p *Prompter, render func(), parse func(string) (T, error)) (T, error) {
	for {
		render()

		line, err := p.readLine()
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		var inputErr *InputError
		switch {
		case err == nil:
			return v, nil
		case errors.As(err, &inputErr):
			p.correct(inputErr)
		default:
			var zero T
			return zero, err
		}
	}
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
