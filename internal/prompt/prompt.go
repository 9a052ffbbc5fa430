// Package prompt implements the line-oriented prompts used by the
// interactive setup. Helpers read from an io.Reader and write to an
// io.Writer so tests can script a whole session.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader is a buffered prompt session. A single Reader must be used
// for the whole session so buffered input is not lost between prompts.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader that prompts on out and reads answers from in.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Line prints the label and returns the next input line with
// surrounding whitespace trimmed. Returns an error only when input is
// exhausted before any text was read.
func (r *Reader) Line(label string) (string, error) {
	fmt.Fprint(r.out, label)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// NonEmpty re-prompts until the user enters a non-blank line,
// printing complaint after each blank answer.
func (r *Reader) NonEmpty(label, complaint string) (string, error) {
	for {
		line, err := r.Line(label)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(r.out, complaint)
	}
}

// WithDefault returns fallback when the user enters a blank line.
func (r *Reader) WithDefault(label, fallback string) (string, error) {
	line, err := r.Line(label)
	if err != nil {
		return "", err
	}
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

// YesNo asks a yes/no question, rendering "[Y/n]" or "[y/N]" after it
// depending on the default. Only an explicit yes or no flips the
// answer; blank or unrecognized input picks defaultYes.
func (r *Reader) YesNo(question string, defaultYes bool) (bool, error) {
	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	line, err := r.Line(question + suffix)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return defaultYes, nil
	}
}
