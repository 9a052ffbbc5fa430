// Package output provides terminal output formatting for the
// initializer. It is dependency-light so any package can use it
// without import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// ruleWidth caps banner rules so they stay readable in wide terminals.
const ruleWidth = 60

// TerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func TerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// Rule prints a horizontal rule sized to the terminal.
func Rule(out io.Writer) {
	width := TerminalWidth()
	if width > ruleWidth {
		width = ruleWidth
	}
	fmt.Fprintln(out, strings.Repeat("=", width))
}

// Banner prints a cyan title between two rules.
func Banner(out io.Writer, title string) {
	Rule(out)
	fmt.Fprintln(out, cyan(title))
	Rule(out)
}

// Success prints a green checkmark line.
func Success(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// Warn prints a yellow warning line.
func Warn(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "%s %s\n", yellow("⚠"), fmt.Sprintf(format, args...))
}

// Fail prints a red failure line.
func Fail(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "%s %s\n", red("✗"), fmt.Sprintf(format, args...))
}
