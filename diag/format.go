// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// styles is the set of colors used to render diagnostics.
type styles struct {
	err, warning, info, rule, file, line, message *color.Color
}

func newStyles(enable bool) styles {
	s := styles{
		err:     color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgHiYellow, color.Bold),
		info:    color.New(color.FgHiCyan, color.Bold),
		rule:    color.New(color.FgYellow, color.Bold),
		file:    color.New(color.FgCyan, color.Bold),
		line:    color.New(color.FgHiBlue, color.Bold),
		message: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{s.err, s.warning, s.info, s.rule, s.file, s.line, s.message} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s styles) severity(sev Severity) *color.Color {
	switch sev {
	case Warning:
		return s.warning
	case Info:
		return s.info
	default:
		return s.err
	}
}

// FormatOptions control the rendering of diagnostics by Format.
type FormatOptions struct {
	Filename string // the name to report for the source
	Color    bool   // whether to emit color escape sequences
}

// Format writes a human-readable rendering of ds to w. Each diagnostic is
// shown with the first line of its range from src, with the range marked
// beneath it.
func Format(w io.Writer, src []byte, ds []Diagnostic, opts FormatOptions) error {
	st := newStyles(opts.Color)
	ls := NewLines(src)
	width := len(fmt.Sprint(ls.Len()))
	pad := strings.Repeat(" ", width+1)

	var sb strings.Builder
	for _, d := range ds {
		loc := ls.Locate(d.Span)
		sb.WriteString(st.severity(d.Severity).Sprintf("%s: ", d.Severity))
		sb.WriteString(st.rule.Sprintf("%s\n", d.Rule))
		sb.WriteString(st.line.Sprintf("%s--> ", pad[1:]))
		sb.WriteString(st.file.Sprintf("%s:%d:%d\n", opts.Filename, loc.First.Line, loc.First.Column+1))
		sb.WriteString(st.line.Sprintf("%s|\n", pad))

		text := ls.Line(loc.First.Line)
		sb.WriteString(st.line.Sprintf("%*d | ", width, loc.First.Line))
		sb.WriteString(text + "\n")

		// Underline to the end of the range, or the end of its first line.
		end := len(text)
		if loc.Last.Line == loc.First.Line {
			end = min(end, loc.Last.Column)
		}
		n := max(1, end-loc.First.Column)
		sb.WriteString(st.line.Sprintf("%s| ", pad))
		sb.WriteString(strings.Repeat(" ", visualWidth(text, loc.First.Column)))
		sb.WriteString(st.message.Sprintf("%s %s\n\n", strings.Repeat("^", n), d.Message))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// visualWidth returns the number of columns occupied by the first n bytes of
// line, with tabs expanded to the next tab stop.
func visualWidth(line string, n int) int {
	const tabWidth = 8
	var col int
	for i := 0; i < n && i < len(line); i++ {
		if line[i] == '\t' {
			col += tabWidth - col%tabWidth
		} else {
			col++
		}
	}
	return col
}
