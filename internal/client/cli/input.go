package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for values the command line did not supply.
// Prompts go to out; answers come from in, passwords from the terminal.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	secret func() ([]byte, error)
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		secret: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
	}
}

// Line reads one trimmed line. A final line without a newline is accepted;
// an empty stream is an error.
func (p *Prompter) Line(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s\n> ", label); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Text reads lines until an empty one or end of input and joins them.
func (p *Prompter) Text(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s\n(press Enter on an empty line to finish)\n", label); err != nil {
		return "", err
	}

	var b strings.Builder
	for {
		line, err := p.in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// Password reads a value without echo.
func (p *Prompter) Password(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}
	raw, err := p.secret()
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	defer clear(raw)
	return string(raw), nil
}
