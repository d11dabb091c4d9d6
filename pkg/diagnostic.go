package booleval

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	gutterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	offendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// DiagnosticPrinter renders a positioned error against its source:
//
//	--> Error: invalid bit, must be `0` or `1` (at 2..3)
//	 |
//	 | 1 2 A
//	 |   ^
//	 |
type DiagnosticPrinter struct {
	Color bool
}

// FormatError renders err without colors. Errors that carry no position are
// returned as their plain message.
func FormatError(err error, src string) string {
	return DiagnosticPrinter{}.Format(err, src)
}

func (d DiagnosticPrinter) Format(err error, src string) string {
	e, ok := AsError(err)
	if !ok {
		return err.Error()
	}

	span := clampSpan(e.Span, len(src))
	before, offending, after := sourceSections(src, span)

	spaces := strings.Repeat(" ", runewidth.StringWidth(before))
	markers := strings.Repeat("^", max(1, runewidth.StringWidth(offending)))

	arrow, bar := d.paint(gutterStyle, "-->"), d.paint(gutterStyle, "|")

	var out strings.Builder
	fmt.Fprintf(&out, "%s Error: %s (at %s)\n", arrow, e.Message, e.Span)
	fmt.Fprintf(&out, " %s\n", bar)
	fmt.Fprintf(&out, " %s %s%s%s\n", bar, before, d.paint(offendingStyle, offending), after)
	fmt.Fprintf(&out, " %s %s%s\n", bar, spaces, d.paint(gutterStyle, markers))
	fmt.Fprintf(&out, " %s\n", bar)

	return out.String()
}

func (d DiagnosticPrinter) paint(style lipgloss.Style, s string) string {
	if !d.Color || s == "" {
		return s
	}

	return style.Render(s)
}

// sourceSections splits the lines touched by span into the text before the
// span, the span itself and the rest of the last line.
func sourceSections(src string, span Span) (string, string, string) {
	lo := strings.LastIndexByte(src[:span.Start], '\n') + 1

	hi := len(src)
	if i := strings.IndexByte(src[span.End:], '\n'); i >= 0 {
		hi = span.End + i
	}

	return src[lo:span.Start], src[span.Start:span.End], strings.TrimSuffix(src[span.End:hi], "\r")
}

func clampSpan(span Span, n int) Span {
	return NewSpan(min(max(span.Start, 0), n), min(max(span.End, 0), n))
}
