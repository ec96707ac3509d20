// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package diag

import (
	"sort"

	"github.com/creachadair/jsonfg/syntax"
	"go4.org/mem"
)

// Lines maps byte offsets in a source text to line and column positions.
type Lines struct {
	src   mem.RO
	start []int // offsets where each line begins
}

// NewLines constructs a line map for src.
func NewLines(src []byte) *Lines {
	text := mem.B(src)
	ls := &Lines{src: text, start: []int{0}}
	for off := 0; ; {
		i := mem.IndexByte(text.SliceFrom(off), '\n')
		if i < 0 {
			break
		}
		off += i + 1
		ls.start = append(ls.start, off)
	}
	return ls
}

// Len reports the number of lines in the source.
func (ls *Lines) Len() int { return len(ls.start) }

// Position returns the line and column of offset. Offsets outside the source
// are clamped to its bounds.
func (ls *Lines) Position(offset int) syntax.LineCol {
	offset = max(0, min(offset, ls.src.Len()))
	i := sort.Search(len(ls.start), func(i int) bool { return ls.start[i] > offset }) - 1
	return syntax.LineCol{Line: i + 1, Column: offset - ls.start[i]}
}

// Locate returns the complete location of span.
func (ls *Lines) Locate(span syntax.Span) syntax.Location {
	return syntax.Location{Span: span, First: ls.Position(span.Pos), Last: ls.Position(span.End)}
}

// Line returns the text of the specified 1-based line, without its line
// terminator. It returns "" if there is no such line.
func (ls *Lines) Line(n int) string {
	if n < 1 || n > len(ls.start) {
		return ""
	}
	end := ls.src.Len()
	if n < len(ls.start) {
		end = ls.start[n] - 1
	}
	line := ls.src.Slice(ls.start[n-1], end)
	if k := line.Len(); k > 0 && line.At(k-1) == '\r' {
		line = line.SliceTo(k - 1)
	}
	return line.StringCopy()
}
