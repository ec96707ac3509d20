// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package rule defines conformance rules and the engine that applies them to
// a classified document.
//
// A Rule is a record of two optional capabilities: validating a Feature, and
// validating a FeatureCollection. The engine decides which capability to use
// for each object in the document. When the document is a collection, the
// engine calls the Collection capability once for the collection, and the
// Feature capability once for each member feature; any violation reported
// for a member is rebased under "/features/i" so that its pointer addresses
// the member within the whole document.
//
// A rule reports at most one violation per call, with a pointer relative to
// the object it was given.
package rule

import (
	"errors"
	"fmt"

	"github.com/creachadair/jsonfg/feature"
	"github.com/creachadair/jsonfg/pointer"
)

// A Violation reports that an object does not satisfy a rule.
type Violation struct {
	Pointer pointer.Pointer // the location of the problem
	Message string          // a human-readable description
	Rule    string          // the name of the rule (set by the engine)
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s [%s]", v.Pointer, v.Message, v.Rule)
}

// At constructs a violation at pointer p with the given message.
func At(p pointer.Pointer, msg string, args ...any) *Violation {
	return &Violation{Pointer: p, Message: fmt.Sprintf(msg, args...)}
}

// A Rule is a named conformance check. Either or both of the Feature and
// Collection capabilities may be nil, in which case the rule does not apply
// to objects of that kind.
type Rule struct {
	Name        string // a unique stable identifier, e.g., "metadata"
	Description string // a one-line summary of the requirement

	// Feature checks a Feature. The isRoot flag reports whether f is the
	// top-level value of the document.
	Feature func(f *feature.Feature, isRoot bool) *Violation

	// Collection checks a FeatureCollection. It is not called for the
	// members of the collection.
	Collection func(c *feature.Collection) *Violation
}

// featuresPointer is the pointer to the members of a collection.
var featuresPointer = pointer.New("features")

// Apply applies r to doc and returns the resulting violations. A nil doc has
// no violations. If r panics, Apply discards its violations and returns an
// error of concrete type *Fault.
func Apply(r Rule, doc *feature.Document) (vs []Violation, err error) {
	if doc == nil {
		return nil, nil
	}
	defer func() {
		if x := recover(); x != nil {
			vs, err = nil, &Fault{Rule: r.Name, Value: x}
		}
	}()
	add := func(base pointer.Pointer, v *Violation) {
		if v != nil {
			vs = append(vs, Violation{
				Pointer: base.Join(v.Pointer),
				Message: v.Message,
				Rule:    r.Name,
			})
		}
	}

	switch {
	case doc.Feature != nil:
		if r.Feature != nil {
			add(pointer.Root, r.Feature(doc.Feature, doc.Feature.IsRoot()))
		}
	case doc.Collection != nil:
		c := doc.Collection
		if r.Collection != nil {
			add(pointer.Root, r.Collection(c))
		}
		if r.Feature != nil {
			for _, f := range c.Features {
				add(featuresPointer.Index(f.Index), r.Feature(f, f.IsRoot()))
			}
		}
	}
	return vs, nil
}

// ApplyAll applies each of rules to doc and returns the union of their
// violations, in order of rules. The results of each rule are independent of
// the others. If any rules fail, ApplyAll returns the violations of the
// remaining rules, together with an error combining the faults.
func ApplyAll(rules []Rule, doc *feature.Document) ([]Violation, error) {
	var all []Violation
	var errs []error
	for _, r := range rules {
		vs, err := Apply(r, doc)
		all = append(all, vs...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return all, errors.Join(errs...)
}

// A Fault records a rule that panicked during evaluation.
type Fault struct {
	Rule  string
	Value any // the value passed to panic
}

func (f *Fault) Error() string { return fmt.Sprintf("rule %q failed: %v", f.Rule, f.Value) }
