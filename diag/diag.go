// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package diag converts rule violations into diagnostics that refer to ranges
// of the source text, and renders them for display.
package diag

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/creachadair/jsonfg/index"
	"github.com/creachadair/jsonfg/pointer"
	"github.com/creachadair/jsonfg/rule"
	"github.com/creachadair/jsonfg/syntax"
)

// Severity is the importance of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Off // the diagnostic is suppressed
)

var severityNames = [...]string{Error: "error", Warning: "warning", Info: "info", Off: "off"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity parses the name of a severity, ignoring case.
func ParseSeverity(s string) (Severity, error) {
	for i, name := range severityNames {
		if strings.EqualFold(s, name) {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// A Diagnostic is a message about a range of the source text.
type Diagnostic struct {
	Span     syntax.Span     // the range of source text to highlight
	Severity Severity        // how important the diagnostic is
	Message  string          // a human-readable description
	Rule     string          // the rule that reported the problem
	Pointer  pointer.Pointer // the location reported by the rule

	// If the source has no value at Pointer, Anchor is the nearest ancestor
	// that has one, which Span refers to. Otherwise Anchor == Pointer.
	Anchor pointer.Pointer
}

// Levels maps rule names to severities. Rules not listed have severity Error.
type Levels map[string]Severity

// Of returns the severity of the named rule.
func (l Levels) Of(name string) Severity {
	if s, ok := l[name]; ok {
		return s
	}
	return Error
}

// Emit resolves each violation against x and returns the corresponding
// diagnostics, in the same order. The span of each diagnostic is that of the
// value at the pointer of the violation or, if the source has no such value,
// of its nearest ancestor that does. If no ancestor is found, the span covers
// the whole document. Violations whose rule has severity Off are discarded.
func Emit(x *index.Index, vs []rule.Violation, levels Levels) []Diagnostic {
	var out []Diagnostic
	for _, v := range vs {
		sev := levels.Of(v.Rule)
		if sev == Off {
			continue
		}
		anchor, r, _ := x.Nearest(v.Pointer)
		out = append(out, Diagnostic{
			Span:     r.Span(),
			Severity: sev,
			Message:  v.Message,
			Rule:     v.Rule,
			Pointer:  v.Pointer,
			Anchor:   anchor,
		})
	}
	return out
}

// Sort sorts ds in place by position, then by rule name and message.
func Sort(ds []Diagnostic) {
	slices.SortStableFunc(ds, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Span.Pos, b.Span.Pos),
			cmp.Compare(a.Span.End, b.Span.End),
			cmp.Compare(a.Rule, b.Rule),
			cmp.Compare(a.Message, b.Message),
		)
	})
}

// Worst returns the most severe severity among ds, or Off if ds is empty.
func Worst(ds []Diagnostic) Severity {
	w := Off
	for _, d := range ds {
		w = min(w, d.Severity)
	}
	return w
}
